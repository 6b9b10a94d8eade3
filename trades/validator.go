package trades

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/types"
)

// Validator enforces the structural and business-rule legality of a proposed
// exchange before it is allowed to exist. Checks run in a fixed order and
// the first failure aborts with its specific reason.
type Validator struct {
	log       *logging.Logger
	teams     Teams
	ownership Ownership
	rosters   Rosters
}

func NewValidator(log *logging.Logger, teams Teams, ownership Ownership, rosters Rosters) *Validator {
	return &Validator{
		log:       log,
		teams:     teams,
		ownership: ownership,
		rosters:   rosters,
	}
}

// ValidateSubmission checks a two-party submission against league policy and
// current ownership.
func (v *Validator) ValidateSubmission(ctx context.Context, sub *types.TradeSubmission, settings types.TradeSettings, rules types.RosterRules, now time.Time) error {
	if !settings.TradeDeadline.IsZero() && now.After(settings.TradeDeadline) {
		return ErrTradeDeadlinePassed
	}
	if sub.ProposingTeamID == sub.ReceivingTeamID {
		return ErrSelfTrade
	}
	if !sub.ExpirationDate.IsZero() && !sub.ExpirationDate.After(now) {
		return ErrExpirationInPast
	}
	for _, teamID := range []string{sub.ProposingTeamID, sub.ReceivingTeamID} {
		ok, err := v.teams.Exists(ctx, sub.LeagueID, teamID)
		if err != nil {
			return errors.Wrap(err, "checking league membership")
		}
		if !ok {
			return errors.Wrapf(ErrTeamNotInLeague, "team %s", teamID)
		}
	}
	if err := v.checkOwnership(ctx, sub.LeagueID, sub.ProposingTeamID, sub.ProposedPlayers, sub.ProposedDraftPicks); err != nil {
		return err
	}
	if err := v.checkOwnership(ctx, sub.LeagueID, sub.ReceivingTeamID, sub.RequestedPlayers, sub.RequestedDraftPicks); err != nil {
		return err
	}
	if err := v.checkPickPolicy(append(append([]types.DraftPickItem{}, sub.ProposedDraftPicks...), sub.RequestedDraftPicks...), settings, now); err != nil {
		return err
	}
	if sub.FAABAmount > 0 {
		if !settings.AllowFAABTrades {
			return ErrFAABTradingDisabled
		}
		balance, err := v.ownership.FAABBalance(ctx, sub.ProposingTeamID)
		if err != nil {
			return errors.Wrap(err, "checking FAAB balance")
		}
		if balance < sub.FAABAmount {
			return ErrInsufficientFAAB
		}
	}
	if err := v.checkRosterLimits(ctx, sub.ProposingTeamID, sub.RequestedPlayers, sub.ProposedPlayers, rules); err != nil {
		return err
	}
	return v.checkRosterLimits(ctx, sub.ReceivingTeamID, sub.ProposedPlayers, sub.RequestedPlayers, rules)
}

// ValidateMultiTeamSubmission checks a multi-team submission, including the
// participant uniqueness and give-and-receive rules.
func (v *Validator) ValidateMultiTeamSubmission(ctx context.Context, sub *types.MultiTeamTradeSubmission, settings types.TradeSettings, rules types.RosterRules, now time.Time) error {
	if !settings.AllowMultiTeamTrades {
		return ErrMultiTeamTradesDisabled
	}
	if len(sub.Teams) < 3 {
		return ErrTooFewTeams
	}
	if settings.MaxTeamsInTrade > 0 && len(sub.Teams) > settings.MaxTeamsInTrade {
		return errors.Wrapf(ErrTooManyTeams, "maximum %d teams allowed", settings.MaxTeamsInTrade)
	}
	if !settings.TradeDeadline.IsZero() && now.After(settings.TradeDeadline) {
		return ErrTradeDeadlinePassed
	}
	if !sub.ExpirationDate.IsZero() && !sub.ExpirationDate.After(now) {
		return ErrExpirationInPast
	}

	seen := map[string]struct{}{}
	initiatorFound := false
	for _, tm := range sub.Teams {
		if _, ok := seen[tm.TeamID]; ok {
			return errors.Wrapf(ErrDuplicateTeamInTrade, "team %s", tm.TeamID)
		}
		seen[tm.TeamID] = struct{}{}
		if tm.TeamID == sub.InitiatingTeamID {
			initiatorFound = true
		}
	}
	if !initiatorFound {
		return ErrInitiatorNotParticipant
	}

	var picks []types.DraftPickItem
	faabAttached := false
	for _, tm := range sub.Teams {
		ok, err := v.teams.Exists(ctx, sub.LeagueID, tm.TeamID)
		if err != nil {
			return errors.Wrap(err, "checking league membership")
		}
		if !ok {
			return errors.Wrapf(ErrTeamNotInLeague, "team %s", tm.TeamID)
		}

		giving := len(tm.GivingPlayers) + len(tm.GivingDraftPicks)
		if tm.FAABGiving > 0 {
			giving++
		}
		receiving := len(tm.ReceivingPlayers) + len(tm.ReceivingDraftPicks)
		if tm.FAABReceiving > 0 {
			receiving++
		}
		if giving == 0 || receiving == 0 {
			return errors.Wrapf(ErrTeamMustGiveAndReceive, "team %s", tm.TeamID)
		}

		if err := v.checkOwnership(ctx, sub.LeagueID, tm.TeamID, tm.GivingPlayers, tm.GivingDraftPicks); err != nil {
			return err
		}
		if tm.FAABGiving > 0 {
			faabAttached = true
			balance, err := v.ownership.FAABBalance(ctx, tm.TeamID)
			if err != nil {
				return errors.Wrap(err, "checking FAAB balance")
			}
			if balance < tm.FAABGiving {
				return errors.Wrapf(ErrInsufficientFAAB, "team %s", tm.TeamID)
			}
		}
		if tm.FAABReceiving > 0 {
			faabAttached = true
		}
		picks = append(picks, tm.GivingDraftPicks...)
	}
	if faabAttached && !settings.AllowFAABTrades {
		return ErrFAABTradingDisabled
	}
	if err := v.checkPickPolicy(picks, settings, now); err != nil {
		return err
	}
	for _, tm := range sub.Teams {
		if err := v.checkRosterLimits(ctx, tm.TeamID, tm.ReceivingPlayers, tm.GivingPlayers, rules); err != nil {
			return err
		}
	}
	return nil
}

// checkOwnership verifies every listed asset currently belongs to teamID.
func (v *Validator) checkOwnership(ctx context.Context, leagueID, teamID string, players []types.TradeItem, picks []types.DraftPickItem) error {
	for _, it := range players {
		owner, err := v.ownership.PlayerOwner(ctx, leagueID, it.PlayerID)
		if err != nil {
			return errors.Wrapf(err, "checking ownership of player %s", it.PlayerID)
		}
		if owner != teamID {
			return errors.Wrapf(ErrAssetNotOwned, "player %s is not owned by team %s", it.PlayerName, teamID)
		}
	}
	for _, pk := range picks {
		owner, err := v.ownership.PickOwner(ctx, leagueID, pk)
		if err != nil {
			return errors.Wrapf(err, "checking ownership of %d round %d pick", pk.Year, pk.Round)
		}
		if owner != teamID {
			return errors.Wrapf(ErrAssetNotOwned, "%d round %d pick is not owned by team %s", pk.Year, pk.Round, teamID)
		}
	}
	return nil
}

func (v *Validator) checkPickPolicy(picks []types.DraftPickItem, settings types.TradeSettings, now time.Time) error {
	if len(picks) == 0 {
		return nil
	}
	if !settings.AllowFutureDraftPicks {
		return ErrFuturePickTradingDisabled
	}
	maxYear := now.Year() + settings.MaxFutureYears
	for _, pk := range picks {
		if pk.Year > maxYear {
			return errors.Wrapf(ErrPickTooFarInFuture, "cannot trade picks more than %d years in the future", settings.MaxFutureYears)
		}
	}
	return nil
}

// checkRosterLimits simulates the post-trade roster for a team and rejects
// the exchange when league size or position limits would be violated.
func (v *Validator) checkRosterLimits(ctx context.Context, teamID string, incoming, outgoing []types.TradeItem, rules types.RosterRules) error {
	if rules.MaxRosterSize == 0 && len(rules.PositionLimits) == 0 {
		return nil
	}
	roster, err := v.rosters.GetRoster(ctx, teamID)
	if err != nil {
		return errors.Wrapf(err, "loading roster for team %s", teamID)
	}

	leaving := map[string]struct{}{}
	for _, it := range outgoing {
		leaving[it.PlayerID] = struct{}{}
	}
	size := 0
	byPosition := map[string]int{}
	for _, pl := range roster {
		if _, gone := leaving[pl.PlayerID]; gone {
			continue
		}
		size++
		byPosition[pl.Position]++
	}
	for _, it := range incoming {
		size++
		byPosition[it.Position]++
	}

	if rules.MaxRosterSize > 0 && size > rules.MaxRosterSize {
		return errors.Wrapf(ErrRosterLimitExceeded, "team %s would have %d players", teamID, size)
	}
	for pos, limit := range rules.PositionLimits {
		if limit > 0 && byPosition[pos] > limit {
			return errors.Wrapf(ErrRosterLimitExceeded, "team %s would exceed the %s limit", teamID, pos)
		}
	}
	return nil
}
