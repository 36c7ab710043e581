package model

import "errors"

// Sentinel kinds for estimator errors.
var (
	ErrInvalidConfig = errors.New("invalid model configuration")
)
