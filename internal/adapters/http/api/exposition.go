// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/discountmate/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the Prometheus text exposition of the injected
// registry.
type MetricsHandler struct {
	exposition http.Handler
}

// NewMetricsHandler creates a handler bound to the manager's registry.
func NewMetricsHandler(m *metrics.Manager) *MetricsHandler {
	return &MetricsHandler{
		exposition: promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}),
	}
}

// HandleMetrics handles GET /metrics requests.
func (h *MetricsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.exposition.ServeHTTP(w, r)
}
