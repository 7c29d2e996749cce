package config

import (
	"time"

	"github.com/vietddude/airdrop-checker/internal/infra/airdrop"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	API     airdrop.Config `yaml:"api"`
	Checker CheckerConfig  `yaml:"checker"`
	Logging LoggingConfig  `yaml:"logging"`
}

// CheckerConfig holds batch settings.
type CheckerConfig struct {
	MaxBatch int `yaml:"max_batch"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Defaults used when a field is absent from the file.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)
