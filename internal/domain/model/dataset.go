package model

import "math/rand"

// Synthetic training data bounds. The label is a noisy linear blend of the
// three features, clipped into the valid discount range, so the fitted tree
// approximates "more spend, more items, higher tier -> bigger discount".
const (
	minTotal     = 5.0
	maxTotal     = 500.0
	maxItems     = 30
	tierLevels   = 4
	totalDivisor = 1000.0
	itemsDivisor = 200.0
	tierWeight   = 0.05
	noiseStdDev  = 0.01
)

// sample is one labeled training row: (total, items, tier ordinal) -> discount.
type sample struct {
	features [featureCount]float64
	label    float64
}

// syntheticTrainingSet generates n labeled samples from a seeded source so
// that every fit of the same configuration is identical.
func syntheticTrainingSet(n int, seed int64) []sample {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible fits
	out := make([]sample, n)
	for i := range out {
		total := minTotal + rng.Float64()*(maxTotal-minTotal)
		items := float64(1 + rng.Intn(maxItems-1))
		tierOrdinal := float64(rng.Intn(tierLevels))

		label := total/totalDivisor + items/itemsDivisor + tierOrdinal*tierWeight + rng.NormFloat64()*noiseStdDev

		out[i] = sample{
			features: [featureCount]float64{total, items, tierOrdinal},
			label:    clipDiscount(label),
		}
	}
	return out
}
