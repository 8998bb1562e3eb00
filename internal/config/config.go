package config

// ScannerConfig is the root configuration for a scanner run.
type ScannerConfig struct {
	API  APIConfig  `yaml:"api"`
	Scan ScanConfig `yaml:"scan"`
}

// APIConfig holds Kalshi API settings.
type APIConfig struct {
	RestURL        string   `yaml:"rest_url"`
	APIKeyID       string   `yaml:"api_key_id"`       // API key ID (for KALSHI-ACCESS-KEY header)
	PrivateKeyPath string   `yaml:"private_key_path"` // Path to RSA private key PEM file
	Timeout        Duration `yaml:"timeout"`
}

// ScanConfig holds the scan window and spread reporting settings.
type ScanConfig struct {
	WindowHours          int `yaml:"window_hours"`           // Report markets closing within this many hours
	SpreadThresholdCents int `yaml:"spread_threshold_cents"` // Spreads strictly above this are flagged wide
	PageLimit            int `yaml:"page_limit"`             // Markets per API page (max 1000)
}
