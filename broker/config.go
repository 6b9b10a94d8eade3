package broker

import (
	"time"

	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

const namedLogger = "broker"

// Config represents the configuration of the broker.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// SendTimeout bounds how long a slow subscriber may block an async send
	// before the batch is dropped for it.
	SendTimeout encoding.Duration `long:"send-timeout"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		SendTimeout: encoding.Duration{Duration: time.Second},
	}
}
