package sqlstore

import (
	"context"
	"embed"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/astralfield/tradecore/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Connection is the narrow slice of pgx the stores need, satisfied by both a
// pool and a transaction.
type Connection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// ConnectionSource wraps the shared pgx pool every store embeds.
type ConnectionSource struct {
	Connection Connection

	log  *logging.Logger
	pool *pgxpool.Pool
}

func NewConnectionSource(log *logging.Logger, conf ConnectionConfig) (*ConnectionSource, error) {
	log = log.Named(namedLogger)

	poolConfig, err := conf.GetPoolConfig()
	if err != nil {
		return nil, errors.Wrap(err, "parsing connection config")
	}
	pool, err := pgxpool.ConnectConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	return &ConnectionSource{
		Connection: pool,
		log:        log,
		pool:       pool,
	}, nil
}

func (s *ConnectionSource) Close() {
	s.pool.Close()
}

// MigrateToLatestSchema brings the database schema up to date with the
// embedded migrations.
func MigrateToLatestSchema(log *logging.Logger, conf Config) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.Named("db migration").GooseLogger())

	poolConfig, err := conf.ConnectionConfig.GetPoolConfig()
	if err != nil {
		return errors.Wrap(err, "parsing connection config")
	}

	db := stdlib.OpenDB(*poolConfig.ConnConfig)
	defer db.Close()

	if conf.WipeOnStartup {
		currentVersion, err := goose.GetDBVersion(db)
		if err != nil {
			return err
		}
		if currentVersion > 0 {
			if err := goose.DownTo(db, migrationsDir, 0); err != nil {
				return errors.Wrap(err, "clearing sql schema")
			}
		}
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return errors.Wrap(err, "migrating sql schema")
	}
	return nil
}
