package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/analysis"
	"github.com/astralfield/tradecore/broker"
	"github.com/astralfield/tradecore/config"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/sqlstore"
	"github.com/astralfield/tradecore/subscribers"
	"github.com/astralfield/tradecore/trades"
)

type RunCmd struct {
	Home string `short:"d" long:"home" default:"." description:"Directory holding the tradecore configuration"`
}

var runCmd RunCmd

// realTime is the wall clock time service used outside of tests.
type realTime struct{}

func (realTime) GetTimeNow() time.Time {
	return time.Now().UTC()
}

func (opts *RunCmd) Execute(_ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewFromFile(ctx, logging.NewLoggerFromEnv("dev"), opts.Home)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	cfg := watcher.Get()

	log := logging.NewLoggerFromEnv(cfg.Logging.Environment)
	defer log.AtExit()

	if err := sqlstore.MigrateToLatestSchema(log, cfg.SQLStore); err != nil {
		return err
	}
	connSource, err := sqlstore.NewConnectionSource(log, cfg.SQLStore.ConnectionConfig)
	if err != nil {
		return err
	}
	defer connSource.Close()

	tradeStore := sqlstore.NewTrades(connSource)
	voteStore := sqlstore.NewVotes(connSource)
	teamStore := sqlstore.NewTeams(connSource)
	ownershipStore := sqlstore.NewOwnership(connSource)
	rosterStore := sqlstore.NewRosters(connSource)
	leagueStore := sqlstore.NewLeagues(connSource)
	valuationStore := sqlstore.NewValuation(connSource)
	transactionStore := sqlstore.NewTransactions(connSource)

	cachedTrades, err := trades.NewCachedStore(tradeStore, cfg.Trades.TradeCacheSize)
	if err != nil {
		return err
	}

	timeService := realTime{}
	eventBroker := broker.New(ctx, log, cfg.Broker)
	eventBroker.Subscribe(subscribers.NewActivityStream(ctx, log, transactionStore, false))

	analysisEngine := analysis.New(log, cfg.Analysis, valuationStore, rosterStore)
	settlementEngine := settlement.New(log, cfg.Settlement, ownershipStore, timeService, eventBroker)
	tradeEngine := trades.New(
		log,
		cfg.Trades,
		cachedTrades,
		voteStore,
		teamStore,
		ownershipStore,
		leagueStore,
		rosterStore,
		analysisEngine,
		settlementEngine,
		timeService,
		eventBroker,
	)

	watcher.OnConfigUpdate(func(c config.Config) {
		tradeEngine.ReloadConf(c.Trades)
		analysisEngine.ReloadConf(c.Analysis)
		settlementEngine.ReloadConf(c.Settlement)
	})

	metrics.Start(cfg.Metrics)

	log.Info("tradecore node started",
		logging.String("postgres", cfg.SQLStore.ConnectionConfig.Host),
	)

	sweep := time.NewTicker(cfg.Trades.ExpirySweepInterval.Get())
	defer sweep.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case now := <-sweep.C:
			watcher.OnTimeUpdate(ctx, now)
			tradeEngine.OnTick(ctx, now)
		case s := <-sig:
			log.Info("shutting down", logging.String("signal", s.String()))
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func Run(ctx context.Context, parser *flags.Parser) error {
	runCmd = RunCmd{}

	short := "Runs a tradecore node"
	long := "Runs the trade negotiation and settlement engine against the configured league database"

	_, err := parser.AddCommand("run", short, long, &runCmd)
	return err
}
