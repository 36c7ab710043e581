package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okian/discountmate/pkg/logger"
)

// Run executes the complete smoke test against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting discountmate smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("healthAttempts", config.HealthAttempts),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Wait for the service to become healthy
	if err := waitForHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Exercise the recommend happy path
	if err := checkRecommend(ctx, client, config, stats); err != nil {
		return fmt.Errorf("recommend check failed: %w", err)
	}

	// Step 3: Exercise validation failures
	if err := checkValidation(ctx, client, config, stats); err != nil {
		return fmt.Errorf("validation check failed: %w", err)
	}

	// Step 4: Exercise the simulated failure path
	if err := checkSimulatedError(ctx, client, config, stats); err != nil {
		return fmt.Errorf("simulated error check failed: %w", err)
	}

	// Step 5: Verify the metrics exposition
	if err := verifyMetrics(ctx, client, config, stats); err != nil {
		return fmt.Errorf("metrics verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, stats.ChecksRun)
	}
	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// waitForHealth polls /health until the service answers 200 or attempts run out.
func waitForHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "waiting for service health")
	url := config.BaseURL + "/health"

	for attempt := 1; attempt <= config.HealthAttempts; attempt++ {
		resp, err := client.Get(ctx, url)
		if err == nil {
			body, readErr := readResponseBody(resp)
			if readErr == nil && resp.StatusCode == StatusOK {
				var health map[string]string
				if json.Unmarshal(body, &health) == nil && health["status"] == "ok" {
					logger.Get().Info(ctx, "service is healthy", logger.Int("attempt", attempt))
					return nil
				}
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled while waiting for health: %w", ctx.Err())
		case <-time.After(config.HealthDelay):
		}
	}
	return fmt.Errorf("service at %s never became healthy after %d attempts", config.BaseURL, config.HealthAttempts)
}

// checkRecommend drives the happy path: bounded output, determinism, and a
// larger basket earning at least the smaller basket's discount.
func checkRecommend(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "checking /recommend")
	url := config.BaseURL + "/recommend"

	recommend := func(b Basket) (float64, error) {
		resp, err := client.Post(ctx, url, b)
		if err != nil {
			return 0, err
		}
		body, err := readResponseBody(resp)
		if err != nil {
			return 0, err
		}
		if resp.StatusCode != StatusOK {
			return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		}
		var rr RecommendResponse
		if err := json.Unmarshal(body, &rr); err != nil {
			return 0, fmt.Errorf("unparseable recommend response: %w", err)
		}
		return rr.Discount, nil
	}

	scenario := Basket{Total: 220.0, Items: 5, Tier: "silver"}

	first, err := recommend(scenario)
	record(ctx, stats, "recommend returns 200 with a discount", err == nil)
	if err != nil {
		return err
	}
	record(ctx, stats, "discount within [0, 0.5]", first >= 0 && first <= 0.5)

	second, err := recommend(scenario)
	if err != nil {
		return err
	}
	record(ctx, stats, "identical baskets get identical discounts", second == first)

	low, err := recommend(Basket{Total: 50, Items: 2, Tier: "bronze"})
	if err != nil {
		return err
	}
	high, err := recommend(Basket{Total: 300, Items: 10, Tier: "gold"})
	if err != nil {
		return err
	}
	record(ctx, stats, "bigger gold basket earns at least the bronze discount", high >= low)

	if config.Verbose {
		logger.Get().Info(ctx, "recommend responses",
			logger.Float64("scenario", first),
			logger.Float64("low", low),
			logger.Float64("high", high))
	}
	return nil
}

// checkValidation confirms that out-of-range baskets are rejected with 400.
func checkValidation(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "checking /recommend validation")
	url := config.BaseURL + "/recommend"

	cases := []struct {
		name   string
		basket Basket
	}{
		{"negative total is rejected", Basket{Total: -1, Items: 5}},
		{"zero items are rejected", Basket{Total: 10, Items: 0}},
	}

	for _, tc := range cases {
		resp, err := client.Post(ctx, url, tc.basket)
		if err != nil {
			return err
		}
		body, err := readResponseBody(resp)
		if err != nil {
			return err
		}

		ok := resp.StatusCode == StatusBadRequest
		if ok {
			var detail DetailResponse
			ok = json.Unmarshal(body, &detail) == nil && detail.Detail == "invalid request"
		}
		record(ctx, stats, tc.name, ok)
	}
	return nil
}

// checkSimulatedError confirms the failure endpoint always fails.
func checkSimulatedError(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "checking /simulate_error")

	resp, err := client.Post(ctx, config.BaseURL+"/simulate_error", nil)
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}

	ok := resp.StatusCode == StatusInternalServerError
	if ok {
		var detail DetailResponse
		ok = json.Unmarshal(body, &detail) == nil && detail.Detail == "simulated failure"
	}
	record(ctx, stats, "simulate_error fails with the fixed message", ok)
	return nil
}

// record logs one check outcome and updates the stats.
func record(ctx context.Context, stats *Stats, name string, passed bool) {
	stats.ChecksRun++
	if passed {
		stats.ChecksPassed++
		logger.Get().Info(ctx, "check passed", logger.String("check", name))
		return
	}
	stats.ChecksFailed++
	logger.Get().Error(ctx, "check failed", logger.String("check", name))
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("checksRun", stats.ChecksRun),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))
}
