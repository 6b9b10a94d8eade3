package trades

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/events"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// VoteOnTrade records a league-member ballot on a trade, two-party or
// multi-team. Participants are barred from voting on their own trade and a
// team casts at most one ballot. A veto that reaches the trade's threshold
// transitions it to vetoed on the spot; a vote arriving after the trade has
// settled is rejected as a terminal-state conflict.
func (e *Engine) VoteOnTrade(ctx context.Context, tradeID, userID, teamID string, voteType types.VoteType, reason string) (*types.TradeVote, error) {
	defer metrics.StartEngineTime(namedLogger, "VoteOnTrade")()

	unlock := e.locks.Lock(tradeID)
	defer unlock()

	p, err := e.store.Get(ctx, tradeID)
	if err == nil {
		return e.voteOnProposal(ctx, p, userID, teamID, voteType, reason)
	}
	if !errors.Is(err, ErrTradeNotFound) {
		return nil, err
	}
	t, err := e.store.GetMultiTeam(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	return e.voteOnMultiTeam(ctx, t, userID, teamID, voteType, reason)
}

func (e *Engine) voteOnProposal(ctx context.Context, p *types.TradeProposal, userID, teamID string, voteType types.VoteType, reason string) (*types.TradeVote, error) {
	if p.Status != types.TradeStatusPending && p.Status != types.TradeStatusAccepted {
		if p.Status.IsTerminal() {
			return nil, ErrTradeAlreadyProcessed
		}
		return nil, ErrTradeNotOpenForVoting
	}
	if p.IsParticipant(teamID) {
		return nil, ErrParticipantCannotVote
	}
	vote, err := e.recordVote(ctx, p.ID, userID, teamID, voteType, reason)
	if err != nil {
		return nil, err
	}

	if voteType == types.VoteTypeVeto {
		p.VetoVotes++
		p.VetoVoters = append(p.VetoVoters, teamID)
		if p.VetoThreshold > 0 && p.VetoVotes >= p.VetoThreshold {
			e.transition(p, types.TradeStatusVetoed)
			e.log.Info("trade vetoed by league vote",
				logging.TradeID(p.ID),
				logging.Uint64("veto-votes", p.VetoVotes),
				logging.Uint64("threshold", p.VetoThreshold),
			)
		}
		if err := e.store.Update(ctx, p); err != nil {
			return nil, errors.Wrap(err, "updating veto tally")
		}
		if p.Status == types.TradeStatusVetoed {
			e.broker.Send(events.NewTradeProposalEvent(ctx, *p))
		}
	}
	e.broker.Send(events.NewTradeVoteEvent(ctx, *vote))
	return vote, nil
}

func (e *Engine) voteOnMultiTeam(ctx context.Context, t *types.MultiTeamTrade, userID, teamID string, voteType types.VoteType, reason string) (*types.TradeVote, error) {
	if t.Status != types.TradeStatusPending && t.Status != types.TradeStatusAccepted {
		if t.Status.IsTerminal() {
			return nil, ErrTradeAlreadyProcessed
		}
		return nil, ErrTradeNotOpenForVoting
	}
	if t.IsParticipant(teamID) {
		return nil, ErrParticipantCannotVote
	}
	vote, err := e.recordVote(ctx, t.ID, userID, teamID, voteType, reason)
	if err != nil {
		return nil, err
	}

	if voteType == types.VoteTypeVeto {
		t.VetoVotes++
		t.VetoVoters = append(t.VetoVoters, teamID)
		if t.VetoThreshold > 0 && t.VetoVotes >= t.VetoThreshold {
			now := e.timeService.GetTimeNow()
			t.Status = types.TradeStatusVetoed
			t.ProcessedAt = &now
			metrics.TradeCounterInc(t.Status.String())
			e.log.Info("multi-team trade vetoed by league vote",
				logging.TradeID(t.ID),
				logging.Uint64("veto-votes", t.VetoVotes),
				logging.Uint64("threshold", t.VetoThreshold),
			)
		}
		if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
			return nil, errors.Wrap(err, "updating veto tally")
		}
		if t.Status == types.TradeStatusVetoed {
			e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
		}
	}
	e.broker.Send(events.NewTradeVoteEvent(ctx, *vote))
	return vote, nil
}

// CommissionerVetoTrade vetoes a trade on commissioner authority, bypassing
// the league ballot entirely. The league must allow commissioner vetoes and
// the trade must not have settled.
func (e *Engine) CommissionerVetoTrade(ctx context.Context, tradeID, commissionerID, reason string) error {
	defer metrics.StartEngineTime(namedLogger, "CommissionerVetoTrade")()

	unlock := e.locks.Lock(tradeID)
	defer unlock()

	p, err := e.store.Get(ctx, tradeID)
	if err == nil {
		return e.commissionerVetoProposal(ctx, p, commissionerID, reason)
	}
	if !errors.Is(err, ErrTradeNotFound) {
		return err
	}
	t, err := e.store.GetMultiTeam(ctx, tradeID)
	if err != nil {
		return err
	}
	return e.commissionerVetoMultiTeam(ctx, t, commissionerID, reason)
}

func (e *Engine) commissionerVetoProposal(ctx context.Context, p *types.TradeProposal, commissionerID, reason string) error {
	if p.Status != types.TradeStatusPending && p.Status != types.TradeStatusAccepted {
		if p.Status.IsTerminal() {
			return ErrTradeAlreadyProcessed
		}
		return ErrTradeNotOpenForVoting
	}
	settings, err := e.settings.TradeSettings(ctx, p.LeagueID)
	if err != nil {
		return errors.Wrap(err, "loading league trade settings")
	}
	if !settings.CommissionerVetoEnabled {
		return ErrCommissionerVetoDisabled
	}

	p.CommissionerNotes = reason
	e.transition(p, types.TradeStatusVetoed)
	if err := e.store.Update(ctx, p); err != nil {
		return errors.Wrap(err, "updating vetoed trade")
	}
	e.log.Info("trade vetoed by commissioner",
		logging.TradeID(p.ID),
		logging.String("commissioner", commissionerID),
	)
	e.broker.Send(events.NewTradeProposalEvent(ctx, *p))
	return nil
}

func (e *Engine) commissionerVetoMultiTeam(ctx context.Context, t *types.MultiTeamTrade, commissionerID, reason string) error {
	if t.Status != types.TradeStatusPending && t.Status != types.TradeStatusAccepted {
		if t.Status.IsTerminal() {
			return ErrTradeAlreadyProcessed
		}
		return ErrTradeNotOpenForVoting
	}
	settings, err := e.settings.TradeSettings(ctx, t.LeagueID)
	if err != nil {
		return errors.Wrap(err, "loading league trade settings")
	}
	if !settings.CommissionerVetoEnabled {
		return ErrCommissionerVetoDisabled
	}

	now := e.timeService.GetTimeNow()
	t.Status = types.TradeStatusVetoed
	t.ProcessedAt = &now
	metrics.TradeCounterInc(t.Status.String())
	if err := e.store.UpdateMultiTeam(ctx, t); err != nil {
		return errors.Wrap(err, "updating vetoed multi-team trade")
	}
	e.log.Info("multi-team trade vetoed by commissioner",
		logging.TradeID(t.ID),
		logging.String("commissioner", commissionerID),
		logging.String("reason", reason),
	)
	e.broker.Send(events.NewMultiTeamTradeEvent(ctx, *t))
	return nil
}

// recordVote enforces the one-ballot rule and persists the vote.
func (e *Engine) recordVote(ctx context.Context, tradeID, userID, teamID string, voteType types.VoteType, reason string) (*types.TradeVote, error) {
	existing, err := e.votes.GetByTradeAndTeam(ctx, tradeID, teamID)
	if err != nil && !errors.Is(err, ErrVoteNotFound) {
		return nil, errors.Wrap(err, "checking for an existing vote")
	}
	if existing != nil {
		return nil, ErrTeamAlreadyVoted
	}

	vote := &types.TradeVote{
		ID:       uuid.NewString(),
		TradeID:  tradeID,
		UserID:   userID,
		TeamID:   teamID,
		VoteType: voteType,
		Reason:   reason,
		VotedAt:  e.timeService.GetTimeNow(),
	}
	if err := e.votes.Add(ctx, *vote); err != nil {
		return nil, errors.Wrap(err, "storing vote")
	}
	metrics.VoteCounterInc(voteType.String())
	return vote, nil
}
