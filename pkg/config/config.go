// Package config loads the replay CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob the replay CLI reads from the environment. The
// transactions file may instead be supplied as the first CLI argument, which
// takes precedence.
type Config struct {
	// TransactionsCSV is the path of the transaction log to replay.
	TransactionsCSV string `env:"TRANSACTIONS_CSV"`

	// Shards is the number of replay workers; 1 keeps the run sequential.
	Shards int `env:"REPLAY_SHARDS" envDefault:"1"`

	// MetricsAddr enables the /metrics listener when non-empty.
	MetricsAddr string `env:"METRICS_ADDR"`

	// LogLevel sets the minimum level for stderr logging.
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
