package main

import (
	"context"
	"flag"
	"os"

	"github.com/phuslu/log"

	"github.com/ridwanfathin/cognito-webhook-service/docs"
	"github.com/ridwanfathin/cognito-webhook-service/internal/config"
	"github.com/ridwanfathin/cognito-webhook-service/internal/database"
	"github.com/ridwanfathin/cognito-webhook-service/internal/handler"
	"github.com/ridwanfathin/cognito-webhook-service/internal/logging"
	"github.com/ridwanfathin/cognito-webhook-service/internal/repository"
	"github.com/ridwanfathin/cognito-webhook-service/internal/server"
	"github.com/ridwanfathin/cognito-webhook-service/internal/service"
)

// @title Cognito K3s Webhook
// @version 1.0.0
// @description Microservice for handling Cognito PostConfirmation events
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to an optional TOML configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Logging)
	logger.Info().
		Str("title", cfg.App.Title).
		Str("version", cfg.App.Version).
		Str("trigger_source", cfg.Webhook.TriggerSource).
		Str("users_table", cfg.Webhook.UsersTable).
		Msg("configuration loaded")

	docs.SwaggerInfo.Title = cfg.App.Title
	docs.SwaggerInfo.Description = cfg.App.Description
	docs.SwaggerInfo.Version = cfg.App.Version

	// Initialize database pool
	db, err := database.NewPostgresDB(context.Background(), cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database pool")
	}
	defer db.Close()

	// Initialize repository and services
	userRepo := repository.NewPostgresUserRepository(db, cfg.Webhook.UsersTable)
	interpreter := service.NewEventInterpreter(cfg.Webhook.TriggerSource, logger)
	userService := service.NewUserService(userRepo, cfg.Webhook.DefaultProvider, logger)
	healthService := service.NewHealthService(db, cfg.Database.HealthTimeout, logger)

	// Create handlers
	webhookHandler := handler.NewWebhookHandler(interpreter, userService, cfg.Webhook, logger)
	healthHandler := handler.NewHealthHandler(healthService, cfg.App.Title)

	appServer := server.NewServer(cfg, logger, webhookHandler, healthHandler)

	// Start server (blocking call)
	if err := appServer.Start(); err != nil {
		logger.Error().Err(err).Msg("server error")
		db.Close()
		os.Exit(1)
	}

	logger.Info().Msg("server shutdown complete")
}
