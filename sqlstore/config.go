package sqlstore

import (
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/astralfield/tradecore/config/encoding"
	"github.com/astralfield/tradecore/logging"
)

const namedLogger = "sqlstore"

// ConnectionConfig identifies the postgres instance holding league state.
type ConnectionConfig struct {
	Host     string `long:"host"`
	Port     int    `long:"port"`
	Username string `long:"username"`
	Password string `long:"password"`
	Database string `long:"database"`
}

// Config represents the configuration of the sql storage layer.
type Config struct {
	Level            encoding.LogLevel `long:"log-level"`
	ConnectionConfig ConnectionConfig  `group:"ConnectionConfig" namespace:"ConnectionConfig"`
	WipeOnStartup    encoding.Bool     `long:"wipe-on-startup"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
		ConnectionConfig: ConnectionConfig{
			Host:     "localhost",
			Port:     5432,
			Username: "tradecore",
			Password: "tradecore",
			Database: "tradecore",
		},
		WipeOnStartup: false,
	}
}

func (conf ConnectionConfig) GetConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		conf.Username,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.Database)
}

func (conf ConnectionConfig) GetPoolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(conf.GetConnectionString())
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = "tradecore"
	return cfg, nil
}
