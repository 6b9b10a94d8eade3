package settlement

import (
	"time"

	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

const namedLogger = "settlement"

// Config represents the settlement engine specific configuration.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// Timeout bounds a single settlement transaction.
	Timeout encoding.Duration `long:"timeout"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Timeout: encoding.Duration{Duration: 30 * time.Second},
	}
}
