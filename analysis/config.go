package analysis

import (
	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

const namedLogger = "analysis"

// Config represents the trade analysis specific configuration.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// FAABPointsPerUnit converts a unit of FAAB budget into points-equivalent
	// trade value.
	FAABPointsPerUnit float64 `long:"faab-points-per-unit"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:             encoding.LogLevel{Level: logging.InfoLevel},
		FAABPointsPerUnit: 0.5,
	}
}
