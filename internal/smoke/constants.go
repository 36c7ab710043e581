package smoke

import "time"

// HTTP status code constants.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusInternalServerError = 500
)

// Default run configuration constants.
const (
	DefaultTimeout        = 5 * time.Second
	DefaultHealthAttempts = 60
	DefaultHealthDelay    = 500 * time.Millisecond
)

// Instrument names expected in the metrics exposition.
var expectedInstruments = []string{ //nolint:gochecknoglobals // fixed verification list
	"dm_requests_total",
	"dm_errors_total",
	"dm_request_duration_seconds",
}
