package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/airdrop-checker/internal/checker"
	"github.com/vietddude/airdrop-checker/internal/infra/airdrop"
)

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		// Expand environment variables in the YAML content
		expandedData := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = airdrop.DefaultBaseURL
	}
	if cfg.API.Endpoint == "" {
		cfg.API.Endpoint = airdrop.DefaultEndpoint
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultTimeout
	}
	// Negative disables retries; zero means unset.
	if cfg.API.MaxRetries == 0 {
		cfg.API.MaxRetries = DefaultMaxRetries
	} else if cfg.API.MaxRetries < 0 {
		cfg.API.MaxRetries = 0
	}
	if cfg.API.RetryDelay == 0 {
		cfg.API.RetryDelay = DefaultRetryDelay
	}
	if cfg.Checker.MaxBatch <= 0 {
		cfg.Checker.MaxBatch = checker.DefaultMaxBatch
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
