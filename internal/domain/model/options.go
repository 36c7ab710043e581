package model

// Option applies a configuration option to the Estimator.
type Option func(*Estimator)

// WithSampleCount sets the size of the synthetic training set.
func WithSampleCount(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.sampleCount = n
		}
	}
}

// WithSeed sets the pseudo-random seed for training data generation.
func WithSeed(seed int64) Option {
	return func(e *Estimator) {
		e.seed = seed
	}
}

// WithMaxDepth bounds the depth of the fitted regression tree.
func WithMaxDepth(depth int) Option {
	return func(e *Estimator) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithMinLeaf sets the minimum number of samples per leaf.
func WithMinLeaf(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.minLeaf = n
		}
	}
}
