package config

import (
	"os"
	"strconv"
	"time"

	"github.com/edumgt/eden-api/internal/infrastructure/database"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App   AppConfig
	Redis RedisConfig
	JWT   JWTConfig
	Graph GraphConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// GraphConfig points at the companion graph service that mirrors user
// identities. Calls to it are best-effort. Mode "mock" swaps in a logging
// client for development.
type GraphConfig struct {
	Mode    string // http, mock
	BaseURL string
	Timeout time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Eden API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		Graph: GraphConfig{
			Mode:    getEnv("GRAPH_SERVICE_MODE", "http"),
			BaseURL: getEnv("GRAPH_SERVICE_URL", "http://localhost:7474"),
			Timeout: time.Duration(getEnvInt("GRAPH_SERVICE_TIMEOUT_SECONDS", 5)) * time.Second,
		},
	}

	return cfg, nil
}

// LoadDatabaseConfig reads the PostgreSQL pool configuration.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	return &database.DBConfig{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     getEnvInt("PG_PORT", 5432),
		Username: getEnv("PG_USERNAME", "postgres"),
		Password: getEnv("PG_PASSWORD", ""),
		DBName:   getEnv("PG_DBNAME", "eden"),

		MaxConns:          int32(getEnvInt("PG_MAX_CONNS", 25)),
		MinConns:          int32(getEnvInt("PG_MIN_CONNS", 5)),
		MaxConnLifetime:   time.Duration(getEnvInt("PG_MAX_CONN_LIFETIME_MINUTES", 60)) * time.Minute,
		MaxConnIdleTime:   time.Duration(getEnvInt("PG_MAX_CONN_IDLE_MINUTES", 15)) * time.Minute,
		HealthCheckPeriod: time.Duration(getEnvInt("PG_HEALTH_CHECK_SECONDS", 60)) * time.Second,

		MaxRetries:     getEnvInt("PG_MAX_RETRIES", 4),
		RetryDelay:     time.Duration(getEnvInt("PG_RETRY_DELAY_SECONDS", 1)) * time.Second,
		ConnectTimeout: time.Duration(getEnvInt("PG_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
