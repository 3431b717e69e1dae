package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"todo_webapp/internal/logger"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	AppPort     string
	AppVersion  string
	StoreDriver string
	DatabaseURL string
	SQLitePath  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RPC rate limits, applied per client IP
	APIRateLimit  int
	APIRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads .env (if any) and the process environment. Invalid configuration is fatal.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadFromEnv(os.Getenv)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

// LoadFromEnv builds a Config from getenv
func LoadFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppPort:       getenv("APP_PORT"),
		AppVersion:    getenv("APP_VERSION"),
		StoreDriver:   strings.ToLower(strings.TrimSpace(getenv("STORE_DRIVER"))),
		DatabaseURL:   getenv("DATABASE_URL"),
		SQLitePath:    getenv("SQLITE_PATH"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		APIRateLimit:  120,
		APIRateWindow: time.Minute,
		LogLevel:      getenv("LOG_LEVEL"),
		LogJSON:       strings.EqualFold(getenv("LOG_FORMAT"), "json"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.AppVersion == "" {
		cfg.AppVersion = "dev"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverPostgres
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "todos.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is not set")
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if v := getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	// 0 disables rate limiting
	if v := getenv("API_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("API_RATE_LIMIT must be a non-negative integer, got %q", v)
		}
		cfg.APIRateLimit = n
	}
	if v := getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("API_RATE_WINDOW_SECONDS must be a positive integer, got %q", v)
		}
		cfg.APIRateWindow = time.Duration(n) * time.Second
	}

	return cfg, nil
}
