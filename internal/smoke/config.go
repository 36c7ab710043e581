package smoke

import "time"

// Config holds configuration for one smoke run
type Config struct {
	BaseURL        string        // Base URL of the service under test
	Timeout        time.Duration // HTTP request timeout
	HealthAttempts int           // How many times to poll /health before giving up
	HealthDelay    time.Duration // Delay between health polls
	LogFile        string        // Log file for run output
	Verbose        bool          // Enable verbose logging
}

// Basket is the request body for /recommend
type Basket struct {
	Total float64 `json:"total"`
	Items int     `json:"items"`
	Tier  string  `json:"tier"`
}

// RecommendResponse is the success body from /recommend
type RecommendResponse struct {
	Discount float64 `json:"discount"`
}

// DetailResponse is the generic failure body
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds smoke run statistics
type Stats struct {
	ChecksRun    int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
