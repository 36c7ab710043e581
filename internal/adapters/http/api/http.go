// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/discountmate/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend returns a discount in [0, 0.5] for one basket. The tier
	// name may be any case; unknown names fall back to the lowest tier.
	Recommend(ctx context.Context, total float64, items int, tierName string) (float64, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	recommendHandler *RecommendHandler
	metricsHandler   *MetricsHandler
	simulateHandler  *SimulateErrorHandler
	metrics          *metrics.Manager
}

// NewServer creates a new API server with all handlers. The metrics manager
// is passed in explicitly so tests can use an isolated registry.
func NewServer(deps Dependencies, m *metrics.Manager) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		recommendHandler: NewRecommendHandler(deps),
		metricsHandler:   NewMetricsHandler(m),
		simulateHandler:  NewSimulateErrorHandler(m),
		metrics:          m,
	}
}

// Register attaches all HTTP routes to mux. Every route is wrapped with the
// request counter middleware; only the recommend path feeds the latency
// histogram.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "/health", s.metrics))
	mux.HandleFunc("/recommend", MetricsMiddleware(
		LatencyMiddleware(s.recommendHandler.HandleRecommend, s.metrics),
		"/recommend", s.metrics))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.metricsHandler.HandleMetrics, "/metrics", s.metrics))
	mux.HandleFunc("/simulate_error", MetricsMiddleware(s.simulateHandler.HandleSimulateError, "/simulate_error", s.metrics))
}

type healthResponse struct {
	Status string `json:"status"`
}

type recommendResponse struct {
	Discount float64 `json:"discount"`
}

// detailResponse is the generic failure envelope: {"detail": "..."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
