package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Logger   LoggerConfig
	Admin    AdminConfig
	Business BusinessConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects and configures the persistent key-value backend.
type StorageConfig struct {
	Backend string // "file", "postgres" or "redis"

	// File backend
	Dir string

	// Postgres backend
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string
	MaxConnections   int
	MinConnections   int

	// Redis backend
	RedisURL string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AdminConfig holds the shared back-office password. This is a placeholder
// access gate, not a hardened authentication system.
type AdminConfig struct {
	Password string
}

// BusinessConfig holds storefront business settings.
type BusinessConfig struct {
	// WhatsAppNumber is the default order destination, used until an
	// administrator saves one through the back office.
	WhatsAppNumber string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend:          getEnv("STORAGE_BACKEND", StorageFile),
			Dir:              getEnv("STORAGE_DIR", "data"),
			PostgresHost:     getEnv("DB_HOST", "localhost"),
			PostgresPort:     getEnvAsInt("DB_PORT", 5432),
			PostgresUser:     getEnv("DB_USER", "postgres"),
			PostgresPassword: getEnv("DB_PASSWORD", ""),
			PostgresDatabase: getEnv("DB_NAME", "aguagas"),
			MaxConnections:   getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:   getEnvAsInt("DB_MIN_CONNECTIONS", 2),
			RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Business: BusinessConfig{
			WhatsAppNumber: getEnv("BUSINESS_WHATSAPP_NUMBER", "+5511914860970"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Storage.Backend {
	case StorageFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage directory is required for the file backend")
		}
	case StoragePostgres:
		if c.Storage.PostgresHost == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Storage.PostgresPort < 1 || c.Storage.PostgresPort > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Storage.PostgresPort)
		}
		if c.Storage.PostgresUser == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Storage.PostgresDatabase == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Storage.MinConnections < 1 || c.Storage.MaxConnections < 1 {
			return fmt.Errorf("database connection counts must be at least 1")
		}
		if c.Storage.MinConnections > c.Storage.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	case StorageRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("redis URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be file, postgres or redis)", c.Storage.Backend)
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("admin password is required")
	}

	if c.Business.WhatsAppNumber == "" {
		return fmt.Errorf("business WhatsApp number is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *StorageConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDatabase,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
