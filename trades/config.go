package trades

import (
	"time"

	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

const namedLogger = "trades"

// Config represents the trade engine specific configuration.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// ExpirySweepInterval is how often the review-window sweep runs.
	ExpirySweepInterval encoding.Duration `long:"expiry-sweep-interval"`
	// TradeCacheSize bounds the read-through trade cache.
	TradeCacheSize int `long:"trade-cache-size"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:               encoding.LogLevel{Level: logging.InfoLevel},
		ExpirySweepInterval: encoding.Duration{Duration: time.Minute},
		TradeCacheSize:      512,
	}
}
