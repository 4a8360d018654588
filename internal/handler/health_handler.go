package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/cognito-webhook-service/internal/model"
	"github.com/ridwanfathin/cognito-webhook-service/internal/service"
)

// HealthHandler serves the liveness and health endpoints
type HealthHandler struct {
	healthService service.HealthService
	appTitle      string
	now           func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService service.HealthService, appTitle string) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		appTitle:      appTitle,
		now:           time.Now,
	}
}

// Root handles GET /
// @Summary Liveness check
// @Description Reports that the process is up without touching the database
// @Tags health
// @Produce json
// @Success 200 {object} model.RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	respondOK(c, model.RootResponse{
		Message:   h.appTitle + " is running",
		Status:    service.StatusHealthy,
		Timestamp: timestamp(h.now()),
	})
}

// Health handles GET /health
// @Summary Health check including database connectivity
// @Description Always answers 200; database failures are reported in the body
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.healthService.Check(c.Request.Context())

	respondOK(c, model.HealthResponse{
		Status:    report.Status,
		Database:  report.Database,
		Timestamp: timestamp(h.now()),
		Error:     report.Error,
	})
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
}
