package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvConfig holds every environment-driven setting. The DB_* block is
// optional: when DB_HOST is empty the gateway runs without a database and the
// from-query endpoint reports itself unavailable.
type EnvConfig struct {
	PORT          string
	LOG_FILE_PATH string

	DB_HOST              string
	DB_PORT              string
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_MAX_OPEN_CONNS    int
	DB_MAX_IDLE_CONNS    int
	DB_CONN_MAX_LIFETIME time.Duration
}

// DefaultEnvConfig is populated by LoadEnvConfig.
var DefaultEnvConfig EnvConfig

// LoadEnvConfig reads .env (if present) and the process environment into
// DefaultEnvConfig.
func LoadEnvConfig() error {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	DefaultEnvConfig = EnvConfig{
		PORT:          getEnv("PORT", "8080"),
		LOG_FILE_PATH: getEnv("LOG_FILE_PATH", ""),

		DB_HOST:     getEnv("DB_HOST", ""),
		DB_PORT:     getEnv("DB_PORT", "5432"),
		DB_USER:     getEnv("DB_USER", "postgres"),
		DB_PASSWORD: getEnv("DB_PASSWORD", ""),
		DB_NAME:     getEnv("DB_NAME", "postgres"),
		DB_SSL_MODE: getEnv("DB_SSL_MODE", "disable"),
	}

	var err error
	if DefaultEnvConfig.DB_MAX_OPEN_CONNS, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return err
	}
	if DefaultEnvConfig.DB_MAX_IDLE_CONNS, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return err
	}
	lifetime, err := getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	if err != nil {
		return err
	}
	DefaultEnvConfig.DB_CONN_MAX_LIFETIME = time.Duration(lifetime) * time.Minute

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
