package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// maxBodyBytes bounds the webhook payload; Cognito trigger events are a few KB
const maxBodyBytes = 1 << 20

// readRawBody reads the request body without binding it
func readRawBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	return body, nil
}

// logError logs a failed request with its request id and attaches the error to the gin context
func logError(c *gin.Context, logger *log.Logger, event string, err error, fields map[string]string) {
	entry := logger.Error().
		Err(err).
		Str("event", event).
		Str("path", c.Request.URL.Path)
	if requestID := c.GetString("request_id"); requestID != "" {
		entry = entry.Str("request_id", requestID)
	}
	for key, value := range fields {
		entry = entry.Str(key, value)
	}
	entry.Msg("request failed")

	_ = c.Error(err)
}

// timestamp formats now the way the API reports times
func timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000000")
}
