package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Timing   TimingConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	S3       S3Config
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects the key-value backend for session state.
type StorageConfig struct {
	Backend string // "memory", "redis" or "postgres"
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// TimingConfig holds the simulated latencies, in milliseconds.
type TimingConfig struct {
	AuthLatencyMS   int
	CheckoutDelayMS int
	ChatDelayMS     int
}

// SessionConfig bounds how long idle sessions are kept.
type SessionConfig struct {
	IdleTimeoutMinutes   int
	SweepIntervalSeconds int
}

// CatalogConfig holds the optional catalogue seed location.
type CatalogConfig struct {
	// Path is a JSON (or gzipped JSON) product list. Empty means the built-in catalogue.
	Path string
}

// S3Config holds AWS S3 configuration for catalogue files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "catalog/")
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", StorageMemory),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "storefront"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Timing: TimingConfig{
			AuthLatencyMS:   getEnvAsInt("AUTH_LATENCY_MS", 1000),
			CheckoutDelayMS: getEnvAsInt("CHECKOUT_DELAY_MS", 1500),
			ChatDelayMS:     getEnvAsInt("CHAT_DELAY_MS", 1500),
		},
		Session: SessionConfig{
			IdleTimeoutMinutes:   getEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 24*60),
			SweepIntervalSeconds: getEnvAsInt("SESSION_SWEEP_INTERVAL_SECONDS", 60),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "catalog/"),
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
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis address is required when storage backend is redis")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("invalid redis database: %d", c.Redis.DB)
		}
	case StoragePostgres:
		if err := c.Database.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be memory, redis, or postgres)", c.Storage.Backend)
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

	if c.Timing.AuthLatencyMS < 0 || c.Timing.CheckoutDelayMS < 0 || c.Timing.ChatDelayMS < 0 {
		return fmt.Errorf("simulated delays cannot be negative")
	}

	if c.Session.IdleTimeoutMinutes < 1 {
		return fmt.Errorf("session idle timeout must be at least 1 minute")
	}

	if c.Session.SweepIntervalSeconds < 1 {
		return fmt.Errorf("session sweep interval must be at least 1 second")
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required when S3 is enabled")
		}
	}

	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthLatency returns the simulated sign-in latency.
func (c *TimingConfig) AuthLatency() time.Duration {
	return time.Duration(c.AuthLatencyMS) * time.Millisecond
}

// CheckoutDelay returns the simulated checkout processing time.
func (c *TimingConfig) CheckoutDelay() time.Duration {
	return time.Duration(c.CheckoutDelayMS) * time.Millisecond
}

// ChatDelay returns the simulated chatbot typing time.
func (c *TimingConfig) ChatDelay() time.Duration {
	return time.Duration(c.ChatDelayMS) * time.Millisecond
}

// IdleTimeout returns how long a session may go unused before it is evicted.
func (c *SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are looked for.
func (c *SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
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

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
