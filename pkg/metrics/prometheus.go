// Package metrics provides Prometheus metrics for the DiscountMate service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default latency histogram buckets in seconds.
var defaultLatencyBuckets = []float64{0.05, 0.1, 0.2, 0.5, 1, 2, 5} //nolint:gochecknoglobals // shared default bucket layout

// Manager owns all Prometheus instruments for the service. It is constructed
// once at startup and passed to whoever records; there is no ambient global
// so tests can use a fresh registry each time.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	registry       *prometheus.Registry

	// Request Metrics - traffic and latency per endpoint
	requests        *prometheus.CounterVec
	requestDuration prometheus.Histogram

	// Failure-path Metrics
	simulatedErrors prometheus.Counter

	// Model Metrics - estimator usage and startup fit
	predictions      prometheus.Counter
	modelFitDuration prometheus.Gauge

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "dm",
		subsystem:      "",
		latencyBuckets: defaultLatencyBuckets,
		registry:       prometheus.NewRegistry(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus instruments.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	m.requestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "Request latency (s)",
		Buckets:   m.latencyBuckets,
	})

	m.simulatedErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Simulated errors",
	})

	m.predictions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_total",
		Help:      "Total discount predictions served",
	})

	m.modelFitDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_fit_duration_seconds",
		Help:      "Wall-clock duration of the startup model fit",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Process heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordRequest increments the request counter for one finished request.
func (m *Manager) RecordRequest(endpoint, method, status string) {
	m.requests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordRequestDuration observes one request latency in seconds.
func (m *Manager) RecordRequestDuration(seconds float64) {
	m.requestDuration.Observe(seconds)
}

// RecordSimulatedError increments the simulated error counter.
func (m *Manager) RecordSimulatedError() {
	m.simulatedErrors.Inc()
}

// RecordPrediction increments the served-predictions counter.
func (m *Manager) RecordPrediction() {
	m.predictions.Inc()
}

// SetModelFitDuration records how long the startup model fit took.
func (m *Manager) SetModelFitDuration(seconds float64) {
	m.modelFitDuration.Set(seconds)
}

// UpdateSystemMemoryUsage sets the process memory usage in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	m.systemGoroutineCount.Set(float64(count))
}

// Registry returns the Prometheus registry backing this manager's
// instruments, for exposition handlers and test scrapes.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
