package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
// Credentials are not checked here; they may come from the environment.
func (c *ScannerConfig) Validate() error {
	if c.API.RestURL == "" {
		return errors.New("api.rest_url is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout cannot be negative")
	}

	if c.Scan.WindowHours < 1 {
		return errors.New("scan.window_hours must be >= 1")
	}
	if c.Scan.SpreadThresholdCents < 0 {
		return errors.New("scan.spread_threshold_cents cannot be negative")
	}
	if c.Scan.PageLimit < 1 || c.Scan.PageLimit > 1000 {
		return fmt.Errorf("scan.page_limit must be between 1 and 1000, got %d", c.Scan.PageLimit)
	}

	return nil
}
