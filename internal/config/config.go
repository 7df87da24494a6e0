package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Auth  AuthConfig
	Redis RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins []string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type AuthConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	ProviderURL string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

const (
	defaultJWTSecret   = "winestudy-secret-key-change-in-production"
	defaultProviderURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"
	defaultTokenTTL    = 7 * 24 * time.Hour
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "winestudy"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
		CORSOrigins: splitOrigins(opt("CORS_ORIGINS", "*")),
	}

	cfg.Mongo = MongoConfig{
		URI:    req("MONGO_URL"),
		DBName: req("DB_NAME"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:   opt("JWT_SECRET", defaultJWTSecret),
		TokenTTL:    defaultTokenTTL,
		ProviderURL: opt("AUTH_PROVIDER_URL", defaultProviderURL),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
