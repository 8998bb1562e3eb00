package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL              = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultAPITimeout           = Duration(30 * time.Second)
	DefaultWindowHours          = 24
	DefaultSpreadThresholdCents = 10
	DefaultPageLimit            = 200
)

func (c *ScannerConfig) applyDefaults() {
	if c.API.RestURL == "" {
		c.API.RestURL = DefaultRestURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Scan.WindowHours == 0 {
		c.Scan.WindowHours = DefaultWindowHours
	}
	if c.Scan.SpreadThresholdCents == 0 {
		c.Scan.SpreadThresholdCents = DefaultSpreadThresholdCents
	}
	if c.Scan.PageLimit == 0 {
		c.Scan.PageLimit = DefaultPageLimit
	}
}

// Default returns a config with every field set to its default value.
// Credentials are left empty so they can be filled from the environment.
func Default() *ScannerConfig {
	cfg := &ScannerConfig{}
	cfg.applyDefaults()
	return cfg
}
