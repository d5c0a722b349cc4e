package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pwseed/pwseed-go/internal/config"
	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/handler"
	"github.com/pwseed/pwseed-go/internal/logger"
	"github.com/pwseed/pwseed-go/internal/repository"
	"github.com/pwseed/pwseed-go/internal/service"
	"github.com/pwseed/pwseed-go/internal/userfetch"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes := handler.RouterConfig{
		Generator: handler.NewGeneratorHandler(service.NewGeneratorService(nil)),
		JWTSecret: cfg.JWTSecret,
		SeedRPS:   cfg.SeedRPS,
		SeedBurst: cfg.SeedBurst,
	}

	// People routes need the store; without it the API still generates and classifies.
	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, people routes disabled", "error", err)
	} else {
		defer db.Close()

		repo, err := repository.NewPersonRepository(db, cfg.DatabaseDriver)
		if err != nil {
			slog.Error("repository setup failed", "error", err)
			os.Exit(1)
		}
		if err := repo.Migrate(ctx); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}

		fetcher := userfetch.NewClient(cfg.RandomUserURL, cfg.FetchTimeout)
		people := service.NewPeopleService(fetcher, repo, crypto.NewHasher(crypto.DefaultHashParams()), nil)
		routes.People = handler.NewPeopleHandler(people)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(ctx, routes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return
	}

	slog.Info("server stopped")
}
