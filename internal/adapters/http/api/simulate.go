// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/discountmate/pkg/metrics"
)

// SimulateErrorHandler exercises the failure path: it bumps the error
// counter and always fails, so dashboards and alerts can be verified
// against known traffic.
type SimulateErrorHandler struct {
	metrics *metrics.Manager
}

// NewSimulateErrorHandler creates a new simulate-error handler.
func NewSimulateErrorHandler(m *metrics.Manager) *SimulateErrorHandler {
	return &SimulateErrorHandler{metrics: m}
}

// HandleSimulateError handles POST /simulate_error requests.
func (h *SimulateErrorHandler) HandleSimulateError(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.metrics.RecordSimulatedError()
	writeDetail(w, http.StatusInternalServerError, "simulated failure")
}
