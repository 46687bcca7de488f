package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/response"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

// Check verifies one dependency is reachable.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Check
	config *config.Config
}

func NewHealthHandler(cfg *config.Config, checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, config: cfg}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"status":  "ok",
		"service": h.config.App.Name,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := map[string]string{}
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			log.Printf("[Health] %s check failed: %v", name, err)
			checks[name] = "unhealthy"
			healthy = false
		} else {
			checks[name] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	response.JSON(w, status, map[string]interface{}{
		"status": map[bool]string{true: "ok", false: "degraded"}[healthy],
		"checks": checks,
	})
}
