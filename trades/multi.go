package trades

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/events"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/types"
)

// ProposeMultiTeamTrade validates, analyzes and persists a new multi-team
// trade. The asset routing is resolved once here and stored on the trade so
// settlement never has to re-derive it. The initiating team counts as having
// accepted from the start.
func (e *Engine) ProposeMultiTeamTrade(ctx context.Context, sub *types.MultiTeamTradeSubmission) (*types.MultiTeamTrade, error) {
	defer metrics.StartEngineTime(namedLogger, "ProposeMultiTeamTrade")()

	settings, err := e.settings.TradeSettings(ctx, sub.LeagueID)
	if err != nil {
		return nil, errors.Wrap(err, "loading league trade settings")
	}
	rules, err := e.settings.RosterRules(ctx, sub.LeagueID)
	if err != nil {
		return nil, errors.Wrap(err, "loading league roster rules")
	}
	now := e.timeService.GetTimeNow()
	if err := e.validator.ValidateMultiTeamSubmission(ctx, sub, settings, rules, now); err != nil {
		return nil, err
	}

	e.analyzer.SnapshotMultiTeamValues(ctx, sub)

	threshold, err := e.vetoThreshold(ctx, sub.LeagueID, settings, len(sub.Teams))
	if err != nil {
		return nil, err
	}

	expiry := sub.ExpirationDate
	if expiry.IsZero() && settings.ReviewPeriod > 0 {
		expiry = now.Add(settings.ReviewPeriod)
	}

	t := &types.MultiTeamTrade{
		ID:               uuid.NewString(),
		LeagueID:         sub.LeagueID,
		InitiatingTeamID: sub.InitiatingTeamID,
		Teams:            sub.Teams,
		Status:           types.TradeStatusPending,
		CreatedAt:        now,
		ExpirationDate:   expiry,
		AcceptedTeams:    []string{sub.InitiatingTeamID},
		VetoVoters:       []string{},
		VetoThreshold:    threshold,
	}
	if tm := t.Team(sub.InitiatingTeamID); tm != nil {
		tm.HasAccepted = true
		tm.AcceptedAt = &now
	}

	flows, err := settlement.ResolveMultiTeamFlows(t)
	if err != nil {
		return nil, err
	}
	// the resolved routing must deliver at least one asset to every
	// participant, a declared receive is not enough on its own
	received := map[string]struct{}{}
	for _, f := range flows {
		received[f.ToTeamID] = struct{}{}
	}
	for _, tm := range t.Teams {
		if _, ok := received[tm.TeamID]; !ok {
			return nil, errors.Wrapf(ErrTeamMustGiveAndReceive, "team %s", tm.TeamID)
		}
	}
	t.Flows = flows
	t.Analysis = e.analyzer.AnalyzeMultiTeamTrade(ctx, t)

	if err := e.store.AddMultiTeam(ctx, t); err != nil {
		return nil, errors.Wrap(err, "storing multi-team trade")
	}
	e.log.Info("multi-team trade proposed",
		logging.TradeID(t.ID),
		logging.LeagueID(t.LeagueID),
		logging.Int("teams", len(t.Teams)),
		logging.Int("assets", t.AssetCount()),
	)
	e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
	return t, nil
}

// AcceptMultiTeamTrade records teamID's acceptance. The final acceptance
// triggers settlement of the whole trade; until then the trade stays pending.
func (e *Engine) AcceptMultiTeamTrade(ctx context.Context, tradeID, teamID string) (*types.MultiTeamTrade, error) {
	defer metrics.StartEngineTime(namedLogger, "AcceptMultiTeamTrade")()

	unlock := e.locks.Lock(tradeID)
	defer unlock()

	t, err := e.store.GetMultiTeam(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if !t.IsParticipant(teamID) {
		return nil, ErrTeamNotInTrade
	}
	if t.Status != types.TradeStatusPending {
		if t.Status.IsTerminal() {
			return nil, ErrTradeAlreadyProcessed
		}
		return nil, ErrTradeNotPending
	}
	if t.HasAccepted(teamID) {
		return nil, ErrTeamAlreadyAccepted
	}

	now := e.timeService.GetTimeNow()
	t.AcceptedTeams = append(t.AcceptedTeams, teamID)
	if tm := t.Team(teamID); tm != nil {
		tm.HasAccepted = true
		tm.AcceptedAt = &now
	}
	if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
		return nil, errors.Wrap(err, "updating multi-team trade")
	}
	e.broker.Send(events.NewMultiTeamAcceptanceEvent(ctx, *t, teamID))

	if !t.AllAccepted() {
		e.log.Debug("multi-team trade acceptance recorded",
			logging.TradeID(t.ID),
			logging.TeamID(teamID),
			logging.Int("accepted", len(t.AcceptedTeams)),
			logging.Int("required", len(t.Teams)),
		)
		return t, nil
	}

	if err := e.settleMultiTeam(ctx, t); err != nil {
		return t, err
	}
	return t, nil
}

// settleMultiTeam settles a fully accepted multi-team trade. Success
// completes the trade, failure moves it to the failed state.
func (e *Engine) settleMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error {
	now := e.timeService.GetTimeNow()
	t.Status = types.TradeStatusAccepted
	t.ProcessedAt = &now
	if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
		return errors.Wrap(err, "updating multi-team trade status")
	}

	if _, err := e.settler.SettleMultiTeamTrade(ctx, t); err != nil {
		t.Status = types.TradeStatusFailed
		if uerr := e.store.UpdateMultiTeam(ctx, t); uerr != nil {
			e.log.Error("could not record settlement failure",
				logging.TradeID(t.ID),
				logging.Error(uerr),
			)
		}
		metrics.TradeCounterInc(t.Status.String())
		e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
		return err
	}

	t.Status = types.TradeStatusCompleted
	if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
		return errors.Wrap(err, "updating settled multi-team trade")
	}
	metrics.TradeCounterInc(t.Status.String())
	e.log.Info("multi-team trade executed",
		logging.TradeID(t.ID),
		logging.Int("teams", len(t.Teams)),
	)
	e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
	return nil
}

func (e *Engine) expireMultiTeamTrade(ctx context.Context, tradeID string) {
	unlock := e.locks.Lock(tradeID)
	defer unlock()

	t, err := e.store.GetMultiTeam(ctx, tradeID)
	if err != nil {
		e.log.Error("expiry sweep could not load multi-team trade",
			logging.TradeID(tradeID),
			logging.Error(err),
		)
		return
	}
	if t.Status != types.TradeStatusPending {
		return
	}
	now := e.timeService.GetTimeNow()
	t.Status = types.TradeStatusExpired
	t.ProcessedAt = &now
	if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
		e.log.Error("expiry sweep could not update multi-team trade",
			logging.TradeID(tradeID),
			logging.Error(err),
		)
		return
	}
	metrics.TradeCounterInc(t.Status.String())
	e.log.Info("multi-team trade expired", logging.TradeID(t.ID))
	e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
}
