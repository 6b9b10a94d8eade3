package settlement

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/events"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

var (
	ErrNothingToSettle = errors.New("trade moves no assets")
)

// OwnershipTx is the transaction-scoped view of the ownership store. All
// mutations of any settlement happen through one OwnershipTx, committed or
// rolled back as a whole.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/astralfield/tradecore/settlement OwnershipStore,OwnershipTx,TimeService,Broker
type OwnershipTx interface {
	TransferPlayer(ctx context.Context, playerID, fromTeamID, toTeamID, tradeID string) error
	TransferDraftPick(ctx context.Context, pick types.DraftPickItem, fromTeamID, toTeamID, tradeID string) error
	TransferFAAB(ctx context.Context, fromTeamID, toTeamID string, amount uint64) error
	RecordTransaction(ctx context.Context, rec types.TransactionRecord) error
}

// OwnershipStore is the durable ownership mapping. WithTransaction runs fn
// inside a single database transaction, rolling back on error.
type OwnershipStore interface {
	WithTransaction(ctx context.Context, fn func(tx OwnershipTx) error) error
}

// Broker - the event bus, settlement events are sent here.
type Broker interface {
	Send(event events.Event)
}

// TimeService ...
type TimeService interface {
	GetTimeNow() time.Time
}

// Engine applies the asset transfers of an accepted trade atomically:
// either every player, pick and FAAB movement lands, or none do.
type Engine struct {
	Config
	log *logging.Logger

	ownership   OwnershipStore
	timeService TimeService
	broker      Broker
}

// New instantiates a new instance of the settlement engine.
func New(log *logging.Logger, conf Config, ownership OwnershipStore, timeService TimeService, broker Broker) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:      conf,
		log:         log,
		ownership:   ownership,
		timeService: timeService,
		broker:      broker,
	}
}

// ReloadConf update the internal configuration of the settlement engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// SettleTrade executes all transfers of an accepted two-party trade in one
// transaction and returns the applied flows.
func (e *Engine) SettleTrade(ctx context.Context, p *types.TradeProposal) ([]types.AssetFlow, error) {
	defer metrics.StartEngineTime(namedLogger, "SettleTrade")()

	flows := ResolveTradeFlows(p)
	rec := types.TransactionRecord{
		TradeID:      p.ID,
		Kind:         types.TradeKindTwoParty,
		LeagueID:     p.LeagueID,
		Participants: p.Participants(),
		Flows:        flows,
		ExecutedAt:   e.timeService.GetTimeNow(),
	}
	if err := e.apply(ctx, p.ID, flows, rec); err != nil {
		return nil, err
	}
	return flows, nil
}

// SettleMultiTeamTrade executes all transfers of a fully accepted multi-team
// trade in one transaction, using the routing graph resolved at validation
// time.
func (e *Engine) SettleMultiTeamTrade(ctx context.Context, t *types.MultiTeamTrade) ([]types.AssetFlow, error) {
	defer metrics.StartEngineTime(namedLogger, "SettleMultiTeamTrade")()

	flows := t.Flows
	if len(flows) == 0 {
		// older trades may predate stored flows, resolve on demand
		var err error
		if flows, err = ResolveMultiTeamFlows(t); err != nil {
			return nil, err
		}
	}
	rec := types.TransactionRecord{
		TradeID:      t.ID,
		Kind:         types.TradeKindMultiTeam,
		LeagueID:     t.LeagueID,
		Participants: t.Participants(),
		Flows:        flows,
		ExecutedAt:   e.timeService.GetTimeNow(),
	}
	if err := e.apply(ctx, t.ID, flows, rec); err != nil {
		return nil, err
	}
	return flows, nil
}

func (e *Engine) apply(ctx context.Context, tradeID string, flows []types.AssetFlow, rec types.TransactionRecord) error {
	if len(flows) == 0 {
		return ErrNothingToSettle
	}
	if e.Timeout.Get() > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout.Get())
		defer cancel()
	}

	err := e.ownership.WithTransaction(ctx, func(tx OwnershipTx) error {
		for _, f := range flows {
			var err error
			switch f.Kind {
			case types.AssetKindPlayer:
				err = tx.TransferPlayer(ctx, f.PlayerID, f.FromTeamID, f.ToTeamID, tradeID)
			case types.AssetKindPick:
				err = tx.TransferDraftPick(ctx, *f.Pick, f.FromTeamID, f.ToTeamID, tradeID)
			case types.AssetKindFAAB:
				err = tx.TransferFAAB(ctx, f.FromTeamID, f.ToTeamID, f.FAABAmount)
			}
			if err != nil {
				return err
			}
		}
		return tx.RecordTransaction(ctx, rec)
	})
	if err != nil {
		e.log.Error("settlement rolled back",
			logging.TradeID(tradeID),
			logging.Error(err),
		)
		return errors.Wrap(err, "settlement failed")
	}

	e.log.Info("settlement committed",
		logging.TradeID(tradeID),
		logging.Int("flows", len(flows)),
	)
	e.broker.Send(events.NewSettlementEvent(ctx, tradeID, flows))
	return nil
}
