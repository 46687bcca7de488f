package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/middleware"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

type Handlers struct {
	Health     *HealthHandler
	Domain     *DomainHandler
	Vocabulary *VocabularyHandler
	Translate  *TranslateHandler
}

func NewRouter(cfg *config.Config, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.Health)
	r.Get("/ready", h.Health.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/domains", h.Domain.List)
	r.Get("/domains/{id}", h.Domain.Get)
	r.Get("/vocabulary", h.Vocabulary.List)
	r.Get("/vocabulary/{id}", h.Vocabulary.Get)
	r.Get("/dictionary/{word}", h.Translate.Lookup)
	r.Get("/stats", h.Domain.Stats)

	// Writes are rate limited per client IP.
	r.Group(func(r chi.Router) {
		if cfg.RateLimit.WritesPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit.WritesPerMinute, 1*time.Minute))
		}
		r.Post("/domains", h.Domain.Create)
		r.Delete("/domains/{id}", h.Domain.Delete)
		r.Post("/vocabulary", h.Vocabulary.Create)
		r.Delete("/vocabulary/{id}", h.Vocabulary.Delete)
		r.Post("/translate", h.Translate.Translate)
	})

	return r
}
