package service

import (
	"context"
	"time"

	"github.com/phuslu/log"
)

// Health states
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Pinger runs a no-op query against the storage backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReport is the outcome of a health check. Failures are data, never errors.
type HealthReport struct {
	Status   string
	Database string
	Error    string
}

// HealthService reports process and storage health
type HealthService interface {
	Check(ctx context.Context) HealthReport
}

type healthService struct {
	db      Pinger
	timeout time.Duration
	logger  *log.Logger
}

// NewHealthService creates a health service probing db, bounded by timeout when it is positive
func NewHealthService(db Pinger, timeout time.Duration, logger *log.Logger) HealthService {
	return &healthService{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *healthService) Check(ctx context.Context) HealthReport {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("health check failed")
		return HealthReport{
			Status:   StatusUnhealthy,
			Database: DatabaseDisconnected,
			Error:    err.Error(),
		}
	}

	return HealthReport{
		Status:   StatusHealthy,
		Database: DatabaseConnected,
	}
}
