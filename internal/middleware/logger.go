package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
)

// sensitiveKeys are matched case-insensitively as substrings of header names and JSON keys.
// Cognito events carry phone numbers in userAttributes.
var sensitiveKeys = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"api-key",
	"secret",
	"authorization",
	"bearer",
	"credential",
	"session",
	"cookie",
	"phone_number",
}

const (
	redacted      = "[REDACTED]"
	maxLoggedBody = 1000
)

// bodyRecorder tees the response body so it can be logged after the handler runs
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Logger *log.Logger
	// LogBodies includes redacted request and response bodies at debug level
	LogBodies bool
}

// RequestResponseLogger creates a middleware that logs all API requests and responses
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	logger := config.Logger
	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		var recorder *bodyRecorder
		if config.LogBodies {
			if c.Request.Body != nil {
				requestBody, _ = io.ReadAll(c.Request.Body)
				c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
			}
			recorder = &bodyRecorder{ResponseWriter: c.Writer}
			c.Writer = recorder
		}

		c.Next()

		status := c.Writer.Status()
		entry := logger.Info()
		switch {
		case status >= 500:
			entry = logger.Error()
		case status >= 400:
			entry = logger.Warn()
		}

		entry = entry.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Dur("latency", time.Since(startTime)).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())

		if requestID := c.GetString("request_id"); requestID != "" {
			entry = entry.Str("request_id", requestID)
		}
		if len(c.Errors) > 0 {
			entry = entry.Str("error", c.Errors.String())
		}
		if config.LogBodies {
			entry = entry.
				Str("headers", redactHeaders(c.Request.Header)).
				RawJSON("request_body", redactBody(requestBody)).
				RawJSON("response_body", redactBody(recorder.buf.Bytes()))
		}

		entry.Msg("request completed")
	}
}

// redactHeaders renders headers as a JSON object with sensitive values redacted
func redactHeaders(headers map[string][]string) string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if isSensitive(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	encoded, _ := json.Marshal(out)
	return string(encoded)
}

// redactBody returns body as JSON with sensitive keys redacted.
// Non-JSON bodies are returned as a truncated JSON string.
func redactBody(body []byte) []byte {
	if len(body) == 0 {
		return []byte("null")
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		text := string(body)
		if len(text) > maxLoggedBody {
			text = text[:maxLoggedBody] + "... (truncated)"
		}
		encoded, _ := json.Marshal(text)
		return encoded
	}

	encoded, err := json.Marshal(redactValue(decoded))
	if err != nil {
		return []byte("null")
	}
	return encoded
}

func redactValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, nested := range v {
			if isSensitive(key) {
				v[key] = redacted
				continue
			}
			v[key] = redactValue(nested)
		}
	case []interface{}:
		for i, item := range v {
			v[i] = redactValue(item)
		}
	}
	return value
}

func isSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
