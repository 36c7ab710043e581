package smoke

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/discountmate/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke test tool.
func ShowHelp() {
	os.Stdout.WriteString(`DiscountMate Smoke Test Tool
============================

Drives a running DiscountMate instance end to end: health, recommendations,
validation failures, the simulated error path, and the metrics exposition.

Usage:
  go run cmd/smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default $BASE_URL or "http://localhost:8080")
  -timeout duration
        HTTP request timeout (default 5s)
  -attempts int
        Health poll attempts before giving up (default 60)
  -log string
        Log file for run output (default: smoke_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke-test a locally started service
  go run cmd/smoke/main.go

  # Reuse a service started elsewhere (e.g. by CI)
  BASE_URL=http://service:8080 go run cmd/smoke/main.go

  # Verbose run against a custom address
  go run cmd/smoke/main.go -verbose -url http://localhost:9090
`)
}
