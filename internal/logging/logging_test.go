package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/cognito-webhook-service/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":    log.DebugLevel,
		"info":     log.InfoLevel,
		"warn":     log.WarnLevel,
		"warning":  log.WarnLevel,
		"error":    log.ErrorLevel,
		"critical": log.ErrorLevel,
		"":         log.InfoLevel,
		"verbose":  log.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("email", "a@b.com").Msg("user reconciled")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "user reconciled", entry["message"])
	assert.Equal(t, "a@b.com", entry["email"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error().Msg("dropped")
	assert.Equal(t, log.PanicLevel, logger.Level)
}
