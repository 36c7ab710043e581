// Package model implements the discount estimator: a shallow regression tree
// fit once at startup against a seeded synthetic training set.
package model

import (
	"math"

	"github.com/okian/discountmate/internal/domain/tier"
)

// Default model configuration constants.
const (
	defaultSampleCount = 400
	defaultSeed        = 42
	defaultMaxDepth    = 4
	defaultMinLeaf     = 1

	minDiscount = 0.0
	maxDiscount = 0.5
)

// Recommender is the read side of the estimator. The handler layer depends
// on this rather than the concrete type.
type Recommender interface {
	// Predict returns a discount in [0, 0.5] for one basket.
	Predict(total float64, items int, t tier.Tier) float64
}

// Estimator holds the fitted regression tree. Immutable after New, so it is
// safe for concurrent use by all requests.
type Estimator struct {
	sampleCount int
	seed        int64
	maxDepth    int
	minLeaf     int

	root *treeNode
}

// New generates the synthetic training set and fits the tree exactly once.
func New(opts ...Option) (*Estimator, error) {
	e := &Estimator{
		sampleCount: defaultSampleCount,
		seed:        defaultSeed,
		maxDepth:    defaultMaxDepth,
		minLeaf:     defaultMinLeaf,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	if e.sampleCount < 2*e.minLeaf {
		return nil, ErrInvalidConfig
	}

	samples := syntheticTrainingSet(e.sampleCount, e.seed)
	e.root = fitNode(samples, 0, e.maxDepth, e.minLeaf)
	return e, nil
}

// Predict feeds the basket features through the fitted tree and clips the
// raw prediction into the valid discount range. Pure function of its inputs.
func (e *Estimator) Predict(total float64, items int, t tier.Tier) float64 {
	raw := e.root.predict([featureCount]float64{total, float64(items), t.Ordinal()})
	return clipDiscount(raw)
}

// clipDiscount bounds a raw prediction to [0, 0.5].
func clipDiscount(v float64) float64 {
	return math.Max(minDiscount, math.Min(v, maxDiscount))
}
