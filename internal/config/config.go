package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/phuslu/log"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `toml:"app"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Webhook  WebhookConfig  `toml:"webhook"`
	Logging  LoggingConfig  `toml:"logging"`
}

// AppConfig holds the descriptive application metadata
type AppConfig struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Version     string `toml:"version"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         int           `toml:"port"`
	Mode         string        `toml:"mode"`
	ReadTimeout  time.Duration `toml:"-"`
	WriteTimeout time.Duration `toml:"-"`

	ReadTimeoutSeconds  int `toml:"read_timeout"`
	WriteTimeoutSeconds int `toml:"write_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host          string        `toml:"host"`
	Port          int           `toml:"port"`
	Name          string        `toml:"name"`
	User          string        `toml:"user"`
	Password      string        `toml:"password"`
	SSLMode       string        `toml:"sslmode"`
	MaxConns      int           `toml:"max_conns"`
	HealthTimeout time.Duration `toml:"-"`

	HealthTimeoutSeconds int `toml:"health_timeout"`
}

// WebhookConfig holds the settings that drive event interpretation and reconciliation
type WebhookConfig struct {
	UsersTable      string `toml:"users_table"`
	DefaultProvider string `toml:"default_provider"`
	TriggerSource   string `toml:"trigger_source"`
	TestUserPoolID  string `toml:"test_user_pool_id"`
	TestRegion      string `toml:"test_region"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "json" or "pretty"
}

// NewDefaultConfig returns the configuration used when nothing is overridden
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Title:       "Cognito K3s Webhook",
			Description: "Microservice for handling Cognito PostConfirmation events",
			Version:     "1.0.0",
		},
		Server: ServerConfig{
			Port:                8000,
			Mode:                "release",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
		},
		Database: DatabaseConfig{
			Host:                 "postgresql-service.postgresql",
			Port:                 5432,
			Name:                 "agent",
			User:                 "postgres",
			Password:             "password",
			SSLMode:              "disable",
			MaxConns:             10,
			HealthTimeoutSeconds: 5,
		},
		Webhook: WebhookConfig{
			UsersTable:      "users",
			DefaultProvider: "google",
			TriggerSource:   "PostConfirmation_ConfirmSignUp",
			TestUserPoolID:  "us-east-1_MeClCiUAC",
			TestRegion:      "us-east-1",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig loads the application configuration with priority:
// defaults -> TOML file (optional) -> .env file -> environment variables.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	loadDotEnv()
	applyEnvOverrides(config)
	config.resolveDurations()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads a .env file next to the executable or in the working directory.
// Variables already present in the environment are never overwritten.
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine executable path")
	}

	envPath := filepath.Join(filepath.Dir(execPath), ".env")
	if err := godotenv.Load(envPath); err == nil {
		log.Info().Str("path", envPath).Msg("loaded environment variables from .env file")
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
		return
	}
	log.Info().Msg("loaded environment variables from current directory .env file")
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	config.App.Title = getEnvString("APP_TITLE", config.App.Title)
	config.App.Description = getEnvString("APP_DESCRIPTION", config.App.Description)
	config.App.Version = getEnvString("APP_VERSION", config.App.Version)

	config.Server.Port = getEnvInt("PORT", config.Server.Port)
	config.Server.Mode = getEnvString("GIN_MODE", config.Server.Mode)
	config.Server.ReadTimeoutSeconds = getEnvInt("READ_TIMEOUT", config.Server.ReadTimeoutSeconds)
	config.Server.WriteTimeoutSeconds = getEnvInt("WRITE_TIMEOUT", config.Server.WriteTimeoutSeconds)

	config.Database.Host = getEnvString("DB_HOST", config.Database.Host)
	config.Database.Port = getEnvInt("DB_PORT", config.Database.Port)
	config.Database.Name = getEnvString("DB_NAME", config.Database.Name)
	config.Database.User = getEnvString("DB_USER", config.Database.User)
	config.Database.Password = getEnvString("DB_PASSWORD", config.Database.Password)
	config.Database.SSLMode = getEnvString("DB_SSLMODE", config.Database.SSLMode)
	config.Database.MaxConns = getEnvInt("DB_MAX_CONNS", config.Database.MaxConns)
	config.Database.HealthTimeoutSeconds = getEnvInt("DB_HEALTH_TIMEOUT", config.Database.HealthTimeoutSeconds)

	config.Webhook.UsersTable = getEnvString("USERS_TABLE", config.Webhook.UsersTable)
	config.Webhook.DefaultProvider = getEnvString("DEFAULT_PROVIDER", config.Webhook.DefaultProvider)
	config.Webhook.TriggerSource = getEnvString("TRIGGER_SOURCE", config.Webhook.TriggerSource)
	config.Webhook.TestUserPoolID = getEnvString("TEST_USER_POOL_ID", config.Webhook.TestUserPoolID)
	config.Webhook.TestRegion = getEnvString("TEST_REGION", config.Webhook.TestRegion)

	config.Logging.Level = strings.ToLower(getEnvString("LOG_LEVEL", config.Logging.Level))
	config.Logging.Format = strings.ToLower(getEnvString("LOG_FORMAT", config.Logging.Format))
}

func (c *Config) resolveDurations() {
	c.Server.ReadTimeout = time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
	c.Server.WriteTimeout = time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
	c.Database.HealthTimeout = time.Duration(c.Database.HealthTimeoutSeconds) * time.Second
}

// Validate checks that the values the service cannot run without are usable
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Webhook.UsersTable) == "" {
		return fmt.Errorf("users table name must not be empty")
	}
	if strings.TrimSpace(c.Webhook.TriggerSource) == "" {
		return fmt.Errorf("trigger source must not be empty")
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %q", c.Server.Mode)
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("invalid database max connections: %d", c.Database.MaxConns)
	}

	if c.Database.Password == "password" {
		log.Warn().Msg("using the default database password")
	}
	return nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
