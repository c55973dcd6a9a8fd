package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// StatsProvider exposes runtime statistics for the health endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	statsProvider StatsProvider
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(statsProvider StatsProvider) *HealthHandler {
	return &HealthHandler{statsProvider: statsProvider}
}

// HandleHealth handles GET /healthz requests with a JSON status payload.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if h.statsProvider != nil {
		body["stats"] = h.statsProvider.GetStats()
	}
	writeJSON(w, http.StatusOK, body)
}

// HandleMetrics serves Prometheus metrics from the custom registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
