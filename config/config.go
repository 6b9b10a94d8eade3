//lint:file-ignore SA5008 duplicated struct tags are ok for config

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/astralfield/tradecore/analysis"
	"github.com/astralfield/tradecore/broker"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/sqlstore"
	"github.com/astralfield/tradecore/trades"
)

// Config ties together all other application configuration types.
type Config struct {
	Logging    logging.Config    `group:"Logging" namespace:"logging"`
	Trades     trades.Config     `group:"Trades" namespace:"trades"`
	Analysis   analysis.Config   `group:"Analysis" namespace:"analysis"`
	Settlement settlement.Config `group:"Settlement" namespace:"settlement"`
	SQLStore   sqlstore.Config   `group:"SQLStore" namespace:"sqlstore"`
	Broker     broker.Config     `group:"Broker" namespace:"broker"`
	Metrics    metrics.Config    `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the default configuration for every package, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging:    logging.NewDefaultConfig(),
		Trades:     trades.NewDefaultConfig(),
		Analysis:   analysis.NewDefaultConfig(),
		Settlement: settlement.NewDefaultConfig(),
		SQLStore:   sqlstore.NewDefaultConfig(),
		Broker:     broker.NewDefaultConfig(),
		Metrics:    metrics.NewDefaultConfig(),
	}
}

// Read loads the configuration file from rootPath, laid over the defaults.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write persists cfg at rootPath, creating the file when absent.
func Write(rootPath string, cfg *Config) error {
	path := filepath.Join(rootPath, configFileName)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
