package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pwseed/pwseed-go/internal/middleware"
)

// RouterConfig wires handlers into the HTTP API. People may be nil when no
// store is available; the people routes are then not mounted.
type RouterConfig struct {
	Generator *GeneratorHandler
	People    *PeopleHandler
	JWTSecret string

	// SeedRPS and SeedBurst limit calls to the seed route per client IP.
	SeedRPS   float64
	SeedBurst int
}

// NewRouter builds the API router. Background work started for the router
// stops when ctx is done.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
	r.Post("/api/v1/classify", cfg.Generator.HandleClassify)

	if cfg.People != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/people", cfg.People.HandleList)

			r.With(middleware.RateLimit(ctx, cfg.SeedRPS, cfg.SeedBurst)).
				Post("/api/v1/people/seed", cfg.People.HandleSeed)
		})
	}

	return r
}
