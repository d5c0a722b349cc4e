package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "sqlite")
	}
	if cfg.DatabaseDSN != "user_info.db" {
		t.Errorf("DatabaseDSN = %q, want %q", cfg.DatabaseDSN, "user_info.db")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 24*time.Hour)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, 10*time.Second)
	}
	if cfg.SeedCount != 10 {
		t.Errorf("SeedCount = %d, want 10", cfg.SeedCount)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_DSN", "root:pw@tcp(db:3306)/seed")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("SEED_COUNT", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.DatabaseDriver != "mysql" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "mysql")
	}
	if cfg.DatabaseDSN != "root:pw@tcp(db:3306)/seed" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.JWTExpiry != 15*time.Minute {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 15*time.Minute)
	}
	if cfg.SeedCount != 25 {
		t.Errorf("SeedCount = %d, want 25", cfg.SeedCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")

	if _, err := Load(); !errors.Is(err, ErrDefaultSecret) {
		t.Errorf("Load() error = %v, want %v", err, ErrDefaultSecret)
	}

	t.Setenv("JWT_SECRET", "a-real-secret")
	if _, err := Load(); err != nil {
		t.Errorf("Load() unexpected error: %v", err)
	}
}

func TestLoadSeedCountRange(t *testing.T) {
	tests := []struct {
		value   string
		wantErr error
	}{
		{"0", ErrSeedCount},
		{"-4", ErrSeedCount},
		{"101", ErrSeedCount},
		{"500", ErrSeedCount},
		{"1", nil},
		{"100", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SEED_COUNT", tt.value)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() with SEED_COUNT=%s error = %v, want %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
