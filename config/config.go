package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the app needs from the deployment environment.
// The signing secret and database URL are never committed to source.
type Config struct {
	Port                     string `env:"PORT" envDefault:"3000"`
	DatabaseURL              string `env:"DATABASE_URL"`
	JWTSecret                string `env:"JWT_SECRET"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (Config, error) {
	// .env is a development convenience; deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("you must set your 'DATABASE_URL' environmental variable")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("you must set your 'JWT_SECRET' environmental variable")
	}
	return cfg, nil
}

// TokenTTL returns the access token lifetime as a duration.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
