package smoke

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/discountmate/pkg/logger"
)

// verifyMetrics scrapes /metrics and checks that the declared instruments
// are present and that at least one simulated error was counted by the
// earlier failure-path check.
func verifyMetrics(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "verifying /metrics exposition")

	resp, err := client.Get(ctx, config.BaseURL+"/metrics")
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("metrics endpoint returned status %d", resp.StatusCode)
	}

	exposition := string(body)
	for _, name := range expectedInstruments {
		record(ctx, stats, "exposition contains "+name, containsInstrument(exposition, name))
	}

	errorsTotal, ok := counterValue(exposition, "dm_errors_total")
	record(ctx, stats, "simulated errors were counted", ok && errorsTotal >= 1)

	if config.Verbose {
		logger.Get().Info(ctx, "exposition scraped",
			logger.Int("bytes", len(body)),
			logger.Float64("errorsTotal", errorsTotal))
	}
	return nil
}

// containsInstrument reports whether an instrument name appears in the
// exposition, either as a sample line or in a HELP/TYPE comment.
func containsInstrument(exposition, name string) bool {
	for _, line := range strings.Split(exposition, "\n") {
		if strings.HasPrefix(line, name) ||
			strings.HasPrefix(line, "# HELP "+name) ||
			strings.HasPrefix(line, "# TYPE "+name) {
			return true
		}
	}
	return false
}

// counterValue sums all samples of a counter across its label combinations.
func counterValue(exposition, name string) (float64, bool) {
	var total float64
	found := false

	for _, line := range strings.Split(exposition, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, name) {
			continue
		}
		// Either "name value" or "name{labels} value".
		rest := line[len(name):]
		if rest != "" && rest[0] != ' ' && rest[0] != '{' {
			continue // a longer instrument name with the same prefix
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil {
			continue
		}
		total += value
		found = true
	}
	return total, found
}
