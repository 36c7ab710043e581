package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/discountmate/internal/smoke"
)

// Default configuration constants.
const (
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	defaultURL := os.Getenv("BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	var (
		baseURL  = flag.String("url", defaultURL, "Base URL of the service")
		timeout  = flag.Duration("timeout", smoke.DefaultTimeout, "HTTP request timeout")
		attempts = flag.Int("attempts", smoke.DefaultHealthAttempts, "Health poll attempts before giving up")
		logFile  = flag.String("log", "", "Log file for run output (default: smoke_log_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	// Setup logging
	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create run configuration
	config := &smoke.Config{
		BaseURL:        *baseURL,
		Timeout:        *timeout,
		HealthAttempts: *attempts,
		HealthDelay:    smoke.DefaultHealthDelay,
		LogFile:        *logFile,
		Verbose:        *verbose,
	}

	// Run the smoke test
	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
