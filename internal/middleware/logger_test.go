package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRedactBody(t *testing.T) {
	body := []byte(`{"userName":"u1","request":{"userAttributes":{"email":"a@b.com","phone_number":"+100"}},"password":"x","items":[{"api_key":"k"}]}`)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(redactBody(body), &out))

	assert.Equal(t, "u1", out["userName"])
	assert.Equal(t, "[REDACTED]", out["password"])
	attrs := out["request"].(map[string]interface{})["userAttributes"].(map[string]interface{})
	assert.Equal(t, "a@b.com", attrs["email"])
	assert.Equal(t, "[REDACTED]", attrs["phone_number"])
	item := out["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "[REDACTED]", item["api_key"])
}

func TestRedactBody_NonJSON(t *testing.T) {
	assert.Equal(t, `"not json"`, string(redactBody([]byte("not json"))))
	assert.Equal(t, "null", string(redactBody(nil)))

	long := strings.Repeat("a", maxLoggedBody+10)
	var s string
	require.NoError(t, json.Unmarshal(redactBody([]byte(long)), &s))
	assert.True(t, strings.HasSuffix(s, "... (truncated)"))
}

func TestRedactHeaders(t *testing.T) {
	headers := http.Header{
		"Authorization": {"Bearer abc"},
		"X-Api-Key":     {"k"},
		"Content-Type":  {"application/json"},
	}

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(redactHeaders(headers)), &out))

	assert.Equal(t, "[REDACTED]", out["Authorization"])
	assert.Equal(t, "[REDACTED]", out["X-Api-Key"])
	assert.Equal(t, "application/json", out["Content-Type"])
}

func TestRequestResponseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Level: log.DebugLevel, Writer: &log.IOWriter{Writer: &buf}}

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestResponseLogger(LoggerConfig{Logger: logger, LogBodies: true}))
	router.POST("/echo", func(c *gin.Context) {
		var payload map[string]interface{}
		require.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON"})
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"secret":"s","userName":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/echo", entry["path"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status_code"])
	assert.Equal(t, "req-1", entry["request_id"])

	reqBody := entry["request_body"].(map[string]interface{})
	assert.Equal(t, "[REDACTED]", reqBody["secret"])
	assert.Equal(t, "u1", reqBody["userName"])
	respBody := entry["response_body"].(map[string]interface{})
	assert.Equal(t, "Invalid JSON", respBody["detail"])
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc", w.Body.String())
}
