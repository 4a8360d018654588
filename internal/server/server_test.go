package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/ridwanfathin/cognito-webhook-service/docs"
	"github.com/ridwanfathin/cognito-webhook-service/internal/config"
	"github.com/ridwanfathin/cognito-webhook-service/internal/handler"
	"github.com/ridwanfathin/cognito-webhook-service/internal/logging"
	"github.com/ridwanfathin/cognito-webhook-service/internal/repository/repositorytest"
	"github.com/ridwanfathin/cognito-webhook-service/internal/service"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Server.Mode = "test"
	cfg.Server.Port = 0
	logger := logging.Discard()

	interpreter := service.NewEventInterpreter(cfg.Webhook.TriggerSource, logger)
	userService := service.NewUserService(repositorytest.NewFakeUserRepository(), cfg.Webhook.DefaultProvider, logger)
	healthService := service.NewHealthService(okPinger{}, time.Second, logger)

	return NewServer(cfg,
		logger,
		handler.NewWebhookHandler(interpreter, userService, cfg.Webhook, logger),
		handler.NewHealthHandler(healthService, cfg.App.Title),
	)
}

func TestNewServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	registered := make(map[string]bool)
	for _, route := range srv.GetRouter().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /health",
		"POST /cognito-webhook",
		"POST /test-webhook",
		"GET /api-docs",
		"GET /api-docs/*any",
	} {
		assert.True(t, registered[want], "route %q not registered", want)
	}
}

func TestNewServer_RequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewServer_APIDocsRedirect(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api-docs/index.html", w.Header().Get("Location"))
}

func TestNewServer_SwaggerDocument(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/cognito-webhook")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.httpServer.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
