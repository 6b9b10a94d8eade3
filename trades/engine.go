package trades

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/events"
	"github.com/astralfield/tradecore/libs/num"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
	ErrVoteNotFound  = errors.New("vote not found")
	// Validation errors

	ErrTradeDeadlinePassed       = errors.New("trade deadline has passed")
	ErrSelfTrade                 = errors.New("cannot trade with yourself")
	ErrTeamNotInLeague           = errors.New("team does not exist in league")
	ErrAssetNotOwned             = errors.New("asset is not owned by the stated team")
	ErrFuturePickTradingDisabled = errors.New("future draft pick trading is not enabled")
	ErrPickTooFarInFuture        = errors.New("pick is too many years in the future")
	ErrFAABTradingDisabled       = errors.New("FAAB trading is not enabled")
	ErrInsufficientFAAB          = errors.New("FAAB amount exceeds team balance")
	ErrRosterLimitExceeded       = errors.New("post-trade roster violates league limits")
	ErrExpirationInPast          = errors.New("expiration date has already elapsed")
	ErrMultiTeamTradesDisabled   = errors.New("multi-team trades are not allowed in this league")
	ErrTooManyTeams              = errors.New("too many teams in trade")
	ErrTooFewTeams               = errors.New("a multi-team trade needs at least three teams")
	ErrDuplicateTeamInTrade      = errors.New("duplicate teams in trade")
	ErrTeamMustGiveAndReceive    = errors.New("team must both give and receive assets in the trade")
	ErrInitiatorNotParticipant   = errors.New("initiating team is not a trade participant")

	// Authorization errors

	ErrOnlyReceivingTeamCanRespond = errors.New("only the receiving team can respond to this trade")
	ErrParticipantCannotVote       = errors.New("teams involved in the trade cannot vote")
	ErrTeamAlreadyVoted            = errors.New("team has already voted on this trade")
	ErrTeamNotInTrade              = errors.New("team is not part of this trade")
	ErrTeamAlreadyAccepted         = errors.New("team has already accepted this trade")
	ErrCounterProposalRequired     = errors.New("counter proposal is required")
	ErrCommissionerVetoDisabled    = errors.New("commissioner veto is not enabled in this league")

	// Concurrency conflicts

	ErrTradeNotPending       = errors.New("trade is no longer available for response")
	ErrTradeAlreadyProcessed = errors.New("trade has reached a terminal state")
	ErrTradeNotOpenForVoting = errors.New("trade is not available for voting")
)

// TradeStore is the database of record for two-party and multi-team trades.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/astralfield/tradecore/trades TradeStore,VoteStore,Teams,Ownership,Settings,Rosters,Analyzer,Settler,TimeService,Broker
type TradeStore interface {
	Add(ctx context.Context, p *types.TradeProposal) error
	Get(ctx context.Context, id string) (*types.TradeProposal, error)
	Update(ctx context.Context, p *types.TradeProposal) error
	ListExpired(ctx context.Context, asOf time.Time) ([]*types.TradeProposal, error)
	AddMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error
	GetMultiTeam(ctx context.Context, id string) (*types.MultiTeamTrade, error)
	UpdateMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error
	ListExpiredMultiTeam(ctx context.Context, asOf time.Time) ([]*types.MultiTeamTrade, error)
}

// VoteStore persists league-member ballots.
type VoteStore interface {
	Add(ctx context.Context, v types.TradeVote) error
	GetByTradeAndTeam(ctx context.Context, tradeID, teamID string) (*types.TradeVote, error)
}

// Teams provides league membership.
type Teams interface {
	TeamsInLeague(ctx context.Context, leagueID string) ([]string, error)
	Exists(ctx context.Context, leagueID, teamID string) (bool, error)
}

// Ownership is the read side of the ownership store, consulted for
// validation preconditions. Mutations happen only in settlement.
type Ownership interface {
	PlayerOwner(ctx context.Context, leagueID, playerID string) (string, error)
	PickOwner(ctx context.Context, leagueID string, pick types.DraftPickItem) (string, error)
	FAABBalance(ctx context.Context, teamID string) (uint64, error)
}

// Settings is the read-only league settings provider.
type Settings interface {
	TradeSettings(ctx context.Context, leagueID string) (types.TradeSettings, error)
	RosterRules(ctx context.Context, leagueID string) (types.RosterRules, error)
}

// Rosters provides current rosters for the post-trade limit simulation.
type Rosters interface {
	GetRoster(ctx context.Context, teamID string) ([]types.RosterPlayer, error)
}

// Analyzer attaches advisory reports to proposals.
type Analyzer interface {
	SnapshotValues(ctx context.Context, sub *types.TradeSubmission)
	SnapshotMultiTeamValues(ctx context.Context, sub *types.MultiTeamTradeSubmission)
	AnalyzeTrade(ctx context.Context, p *types.TradeProposal) *types.TradeAnalysis
	AnalyzeMultiTeamTrade(ctx context.Context, t *types.MultiTeamTrade) *types.MultiTeamTradeAnalysis
}

// Settler applies the asset transfers of an accepted trade atomically.
type Settler interface {
	SettleTrade(ctx context.Context, p *types.TradeProposal) ([]types.AssetFlow, error)
	SettleMultiTeamTrade(ctx context.Context, t *types.MultiTeamTrade) ([]types.AssetFlow, error)
}

// TimeService ...
type TimeService interface {
	GetTimeNow() time.Time
}

// Broker - the event bus, state transitions are published here.
type Broker interface {
	Send(event events.Event)
}

// Engine owns the trade lifecycle: proposal validation, the negotiation
// state machine, the veto ballot tally and the review-window expiry sweep.
type Engine struct {
	Config
	log *logging.Logger

	store       TradeStore
	votes       VoteStore
	teams       Teams
	settings    Settings
	analyzer    Analyzer
	settler     Settler
	timeService TimeService
	broker      Broker
	validator   *Validator

	// locks linearizes respond/vote/accept/expire per trade id
	locks *keyedMutex
}

// New instantiates the trade engine.
func New(
	log *logging.Logger,
	cfg Config,
	store TradeStore,
	votes VoteStore,
	teams Teams,
	ownership Ownership,
	settings Settings,
	rosters Rosters,
	analyzer Analyzer,
	settler Settler,
	timeService TimeService,
	broker Broker,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:      cfg,
		log:         log,
		store:       store,
		votes:       votes,
		teams:       teams,
		settings:    settings,
		analyzer:    analyzer,
		settler:     settler,
		timeService: timeService,
		broker:      broker,
		validator:   NewValidator(log, teams, ownership, rosters),
		locks:       newKeyedMutex(),
	}
}

// ReloadConf updates the internal configuration of the trade engine.
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

// ProposeTrade validates, analyzes and persists a new two-party proposal in
// pending state. With auto approval enabled and a fairness score clearing
// the league threshold, the trade is accepted and settled immediately,
// bypassing the receiver's response.
func (e *Engine) ProposeTrade(ctx context.Context, sub *types.TradeSubmission) (*types.TradeProposal, error) {
	defer metrics.StartEngineTime(namedLogger, "ProposeTrade")()

	settings, err := e.settings.TradeSettings(ctx, sub.LeagueID)
	if err != nil {
		return nil, errors.Wrap(err, "loading league trade settings")
	}
	rules, err := e.settings.RosterRules(ctx, sub.LeagueID)
	if err != nil {
		return nil, errors.Wrap(err, "loading league roster rules")
	}
	now := e.timeService.GetTimeNow()
	if err := e.validator.ValidateSubmission(ctx, sub, settings, rules, now); err != nil {
		return nil, err
	}

	e.analyzer.SnapshotValues(ctx, sub)

	threshold, err := e.vetoThreshold(ctx, sub.LeagueID, settings, 2)
	if err != nil {
		return nil, err
	}

	// an open-ended submission still gets the league review window
	expiry := sub.ExpirationDate
	if expiry.IsZero() && settings.ReviewPeriod > 0 {
		expiry = now.Add(settings.ReviewPeriod)
	}

	p := &types.TradeProposal{
		ID:                  uuid.NewString(),
		LeagueID:            sub.LeagueID,
		ProposingTeamID:     sub.ProposingTeamID,
		ReceivingTeamID:     sub.ReceivingTeamID,
		ProposedPlayers:     sub.ProposedPlayers,
		RequestedPlayers:    sub.RequestedPlayers,
		ProposedDraftPicks:  sub.ProposedDraftPicks,
		RequestedDraftPicks: sub.RequestedDraftPicks,
		FAABAmount:          sub.FAABAmount,
		Message:             sub.Message,
		Status:              types.TradeStatusPending,
		CreatedAt:           now,
		ExpirationDate:      expiry,
		VetoVoters:          []string{},
		VetoThreshold:       threshold,
	}
	p.Analysis = e.analyzer.AnalyzeTrade(ctx, p)

	if err := e.store.Add(ctx, p); err != nil {
		return nil, errors.Wrap(err, "storing trade proposal")
	}
	e.log.Info("trade proposed",
		logging.TradeID(p.ID),
		logging.LeagueID(p.LeagueID),
		logging.String("proposing-team", p.ProposingTeamID),
		logging.String("receiving-team", p.ReceivingTeamID),
	)
	e.broker.Send(events.NewTradeProposalEvent(ctx, *p))

	if settings.AutoApprovalEnabled &&
		p.Analysis.FairnessScore.GreaterThanOrEqual(num.DecimalFromFloat(settings.AutoApprovalFairness)) {
		return e.autoApprove(ctx, p)
	}
	return p, nil
}

// autoApprove accepts and settles a freshly stored proposal without receiver
// action. On settlement failure the trade lands in the failed state and the
// error is surfaced alongside the trade.
func (e *Engine) autoApprove(ctx context.Context, p *types.TradeProposal) (*types.TradeProposal, error) {
	unlock := e.locks.Lock(p.ID)
	defer unlock()

	e.log.Info("auto-approving trade", logging.TradeID(p.ID))
	if err := e.acceptAndSettle(ctx, p); err != nil {
		return p, err
	}
	return p, nil
}

// RespondToTrade applies the receiving team's answer to a pending proposal.
// A counter response creates and returns a brand new linked proposal.
func (e *Engine) RespondToTrade(ctx context.Context, tradeID, teamID string, resp types.TradeResponse) (*types.TradeProposal, error) {
	defer metrics.StartEngineTime(namedLogger, "RespondToTrade")()

	unlock := e.locks.Lock(tradeID)
	defer unlock()

	p, err := e.store.Get(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if p.ReceivingTeamID != teamID {
		return nil, ErrOnlyReceivingTeamCanRespond
	}
	if p.Status != types.TradeStatusPending {
		if p.Status.IsTerminal() {
			return nil, ErrTradeAlreadyProcessed
		}
		return nil, ErrTradeNotPending
	}

	switch resp.Type {
	case types.TradeResponseAccept:
		if err := e.acceptAndSettle(ctx, p); err != nil {
			return p, err
		}
		e.broker.Send(events.NewTradeResponseEvent(ctx, *p, resp.Type))
		return p, nil

	case types.TradeResponseReject:
		e.transition(p, types.TradeStatusRejected)
		if err := e.store.Update(ctx, p); err != nil {
			return nil, errors.Wrap(err, "updating trade status")
		}
		e.broker.Send(events.NewTradeResponseEvent(ctx, *p, resp.Type))
		return p, nil

	case types.TradeResponseCounter:
		if resp.Counter == nil {
			return nil, ErrCounterProposalRequired
		}
		counter, err := e.counterOffer(ctx, p, teamID, resp.Counter)
		if err != nil {
			return nil, err
		}
		e.broker.Send(events.NewTradeResponseEvent(ctx, *p, resp.Type))
		return counter, nil
	}
	return nil, errors.Errorf("unsupported trade response %q", resp.Type)
}

// counterOffer creates the replacement proposal with the roles swapped and
// retires the original as countered.
func (e *Engine) counterOffer(ctx context.Context, orig *types.TradeProposal, teamID string, sub *types.TradeSubmission) (*types.TradeProposal, error) {
	sub.LeagueID = orig.LeagueID
	sub.ProposingTeamID = teamID
	sub.ReceivingTeamID = orig.ProposingTeamID

	counter, err := e.ProposeTrade(ctx, sub)
	if err != nil {
		return nil, err
	}

	orig.CounterOfferID = counter.ID
	e.transition(orig, types.TradeStatusCountered)
	if err := e.store.Update(ctx, orig); err != nil {
		return nil, errors.Wrap(err, "updating countered trade")
	}
	return counter, nil
}

// acceptAndSettle moves a pending trade to accepted and invokes settlement
// synchronously. Settlement success completes the trade, failure moves it to
// the failed state, never leaving it accepted.
func (e *Engine) acceptAndSettle(ctx context.Context, p *types.TradeProposal) error {
	e.transition(p, types.TradeStatusAccepted)
	if err := e.store.Update(ctx, p); err != nil {
		return errors.Wrap(err, "updating trade status")
	}

	if _, err := e.settler.SettleTrade(ctx, p); err != nil {
		p.Status = types.TradeStatusFailed
		if uerr := e.store.Update(ctx, p); uerr != nil {
			e.log.Error("could not record settlement failure",
				logging.TradeID(p.ID),
				logging.Error(uerr),
			)
		}
		metrics.TradeCounterInc(p.Status.String())
		e.broker.Send(events.NewTradeProposalEvent(ctx, *p))
		return err
	}

	p.Status = types.TradeStatusCompleted
	if err := e.store.Update(ctx, p); err != nil {
		return errors.Wrap(err, "updating settled trade")
	}
	metrics.TradeCounterInc(p.Status.String())
	e.log.Info("trade executed", logging.TradeID(p.ID))
	e.broker.Send(events.NewTradeProposalEvent(ctx, *p))
	return nil
}

// transition stamps the processed timestamp and new status on the proposal.
// The caller persists.
func (e *Engine) transition(p *types.TradeProposal, to types.TradeStatus) {
	now := e.timeService.GetTimeNow()
	p.Status = to
	p.ProcessedAt = &now
	if to.IsTerminal() || to == types.TradeStatusCountered {
		metrics.TradeCounterInc(to.String())
	}
}

// OnTick runs the review-window sweep: every trade still pending past its
// expiration date transitions to expired. Store errors are logged and
// retried on the next sweep; expiry is a no-op on non-pending trades so a
// replay can never revive a terminal trade.
func (e *Engine) OnTick(ctx context.Context, now time.Time) {
	defer metrics.StartEngineTime(namedLogger, "OnTick")()

	var expired []*types.TradeProposal
	op := func() error {
		var err error
		expired, err = e.store.ListExpired(ctx, now)
		return err
	}
	if err := backoff.Retry(op, expiryBackoff(ctx)); err != nil {
		e.log.Error("expiry sweep could not list trades", logging.Error(err))
		return
	}
	for _, p := range expired {
		e.expireTrade(ctx, p.ID)
	}

	var expiredMulti []*types.MultiTeamTrade
	op = func() error {
		var err error
		expiredMulti, err = e.store.ListExpiredMultiTeam(ctx, now)
		return err
	}
	if err := backoff.Retry(op, expiryBackoff(ctx)); err != nil {
		e.log.Error("expiry sweep could not list multi-team trades", logging.Error(err))
		return
	}
	for _, t := range expiredMulti {
		e.expireMultiTeamTrade(ctx, t.ID)
	}
}

func expiryBackoff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second
	return backoff.WithContext(bo, ctx)
}

func (e *Engine) expireTrade(ctx context.Context, tradeID string) {
	unlock := e.locks.Lock(tradeID)
	defer unlock()

	p, err := e.store.Get(ctx, tradeID)
	if err != nil {
		e.log.Error("expiry sweep could not load trade",
			logging.TradeID(tradeID),
			logging.Error(err),
		)
		return
	}
	if p.Status != types.TradeStatusPending {
		// already transitioned under the lock, nothing to do
		return
	}
	e.transition(p, types.TradeStatusExpired)
	if err := e.store.Update(ctx, p); err != nil {
		e.log.Error("expiry sweep could not update trade",
			logging.TradeID(tradeID),
			logging.Error(err),
		)
		return
	}
	e.log.Info("trade expired", logging.TradeID(p.ID))
	e.broker.Send(events.NewTradeProposalEvent(ctx, *p))
}

// vetoThreshold computes ceil(eligible * pct / 100) where eligible excludes
// the trade's own participants.
func (e *Engine) vetoThreshold(ctx context.Context, leagueID string, settings types.TradeSettings, participants int) (uint64, error) {
	teams, err := e.teams.TeamsInLeague(ctx, leagueID)
	if err != nil {
		return 0, errors.Wrap(err, "loading league teams")
	}
	eligible := len(teams) - participants
	if eligible < 0 {
		eligible = 0
	}
	return (uint64(eligible)*settings.VetoPercentage + 99) / 100, nil
}
