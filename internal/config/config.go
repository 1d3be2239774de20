package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "tradehub.db"
	defaultJWTAccessTTL = "24h"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "dev" {
			return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.JWTSecret = "change-me-jwt-secret"
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
