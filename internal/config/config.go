package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pwseed/pwseed-go/internal/model"
)

const devJWTSecret = "dev-secret-change-in-production"

var (
	ErrDefaultSecret = errors.New("JWT_SECRET must be set in production environment")
	ErrSeedCount     = fmt.Errorf("SEED_COUNT must be between 1 and %d", model.MaxSeedCount)
)

type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	RandomUserURL  string
	FetchTimeout   time.Duration
	LogLevel       string
	LogFormat      string
	SeedCount      int
	SeedRPS        float64
	SeedBurst      int
}

// Load reads configuration from the environment, falling back to defaults
// suited to local development against an embedded SQLite file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("database_driver", "sqlite")
	v.SetDefault("database_dsn", "user_info.db")
	v.SetDefault("jwt_secret", devJWTSecret)
	v.SetDefault("jwt_expiry", "24h")
	v.SetDefault("randomuser_url", "https://randomuser.me/api/")
	v.SetDefault("fetch_timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("seed_count", 10)
	v.SetDefault("seed_rps", 0.2)
	v.SetDefault("seed_burst", 2)

	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetString("port"),
		Env:            v.GetString("env"),
		DatabaseDriver: v.GetString("database_driver"),
		DatabaseDSN:    v.GetString("database_dsn"),
		JWTSecret:      v.GetString("jwt_secret"),
		JWTExpiry:      v.GetDuration("jwt_expiry"),
		RandomUserURL:  v.GetString("randomuser_url"),
		FetchTimeout:   v.GetDuration("fetch_timeout"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		SeedCount:      v.GetInt("seed_count"),
		SeedRPS:        v.GetFloat64("seed_rps"),
		SeedBurst:      v.GetInt("seed_burst"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrDefaultSecret
	}
	if cfg.SeedCount <= 0 || cfg.SeedCount > model.MaxSeedCount {
		return Config{}, ErrSeedCount
	}

	return cfg, nil
}
