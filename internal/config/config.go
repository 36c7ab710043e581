// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers sources.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ModelSampleCount sets the size of the synthetic training set.
	ModelSampleCount int `koanf:"model_sample_count"`

	// ModelSeed seeds the training data generator.
	ModelSeed int64 `koanf:"model_seed"`

	// ModelMaxDepth bounds the fitted regression tree depth.
	ModelMaxDepth int `koanf:"model_max_depth"`

	// ModelMinLeaf sets the minimum number of training samples per leaf.
	ModelMinLeaf int `koanf:"model_min_leaf"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		ModelSampleCount: 400,
		ModelSeed:        42,
		ModelMaxDepth:    4,
		ModelMinLeaf:     1,
	}
}
