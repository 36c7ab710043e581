// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/discountmate/internal/domain/model"
	"github.com/okian/discountmate/internal/domain/tier"
	"github.com/okian/discountmate/pkg/logger"
	"github.com/okian/discountmate/pkg/metrics"
)

// Service owns the fitted discount estimator and implements the API's
// Recommender dependency.
type Service struct {
	mu sync.RWMutex

	// Core components
	estimator model.Recommender

	// Configuration
	sampleCount int
	seed        int64
	maxDepth    int
	minLeaf     int

	// State
	started bool

	// Observability
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager used to record model activity.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithModelSampleCount sets the synthetic training set size.
func WithModelSampleCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleCount = n
		}
	}
}

// WithModelSeed sets the training data seed.
func WithModelSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithModelMaxDepth bounds the regression tree depth.
func WithModelMaxDepth(depth int) Option {
	return func(s *Service) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithModelMinLeaf sets the minimum training samples per tree leaf.
func WithModelMinLeaf(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minLeaf = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		sampleCount: 400,
		seed:        42,
		maxDepth:    4,
		minLeaf:     1,
		logger:      nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start fits the estimator exactly once. The fitted tree is immutable, so
// after Start returns the service is safe for concurrent requests.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "fitting discount model",
		logger.Int("samples", s.sampleCount),
		logger.Int("maxDepth", s.maxDepth),
	)

	fitStart := time.Now()
	est, err := model.New(
		model.WithSampleCount(s.sampleCount),
		model.WithSeed(s.seed),
		model.WithMaxDepth(s.maxDepth),
		model.WithMinLeaf(s.minLeaf),
	)
	if err != nil {
		return err
	}
	fitDuration := time.Since(fitStart)

	s.estimator = est
	s.started = true

	if s.metrics != nil {
		s.metrics.SetModelFitDuration(fitDuration.Seconds())
	}
	s.logger.Info(ctx, "discount model fitted",
		logger.String("duration", fitDuration.String()),
	)
	return nil
}

// Stop releases the service. The estimator has nothing to tear down; this
// exists for lifecycle symmetry with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "discount service stopped")
}

// Recommend predicts a discount for one basket. The tier name is parsed
// case-insensitively; unknown names fall back to bronze. Numeric validation
// is the caller's responsibility.
func (s *Service) Recommend(ctx context.Context, total float64, items int, tierName string) (float64, error) {
	s.mu.RLock()
	est := s.estimator
	started := s.started
	s.mu.RUnlock()

	if !started {
		return 0, ErrNotStarted
	}

	t := tier.Parse(tierName)
	discount := est.Predict(total, items, t)

	if s.metrics != nil {
		s.metrics.RecordPrediction()
	}
	s.logger.Debug(ctx, "prediction served",
		logger.Float64("total", total),
		logger.Int("items", items),
		logger.String("tier", t.String()),
		logger.Float64("discount", discount),
	)
	return discount, nil
}
