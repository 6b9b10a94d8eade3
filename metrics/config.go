package metrics

import (
	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

// Config represents the configuration of the metric package.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Enabled encoding.Bool     `long:"enabled" description:"Whether or not prometheus metrics are enabled"`
	Port    int               `long:"port" description:"The port to expose metrics on"`
	Path    string            `long:"path" description:"The path the metrics handler is registered at"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
	}
}
