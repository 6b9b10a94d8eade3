package sqlstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// Leagues serves per-league trade policy. A league without a settings row
// runs on the defaults.
type Leagues struct {
	*ConnectionSource
}

func NewLeagues(connectionSource *ConnectionSource) *Leagues {
	return &Leagues{
		ConnectionSource: connectionSource,
	}
}

type leagueSettingsRow struct {
	TradeDeadline           *time.Time
	ReviewPeriod            int64
	VetoPercentage          int64
	CommissionerVetoEnabled bool
	AllowMultiTeamTrades    bool
	MaxTeamsInTrade         int
	AllowFutureDraftPicks   bool
	MaxFutureYears          int
	AllowFaabTrades         bool
	AutoApprovalEnabled     bool
	AutoApprovalFairness    float64
	MaxRosterSize           int
	PositionLimits          []byte
}

func (ls *Leagues) TradeSettings(ctx context.Context, leagueID string) (types.TradeSettings, error) {
	defer metrics.StartSQLQuery("Leagues", "TradeSettings")()

	var row leagueSettingsRow
	err := pgxscan.Get(ctx, ls.Connection, &row, `
		SELECT trade_deadline, review_period, veto_percentage, commissioner_veto_enabled,
		       allow_multi_team_trades, max_teams_in_trade, allow_future_draft_picks,
		       max_future_years, allow_faab_trades, auto_approval_enabled, auto_approval_fairness
		FROM league_settings
		WHERE league_id = $1`,
		leagueID)
	if pgxscan.NotFound(err) {
		return types.DefaultTradeSettings(), nil
	}
	if err != nil {
		return types.TradeSettings{}, err
	}

	settings := types.TradeSettings{
		ReviewPeriod:            time.Duration(row.ReviewPeriod),
		VetoPercentage:          uint64(row.VetoPercentage),
		CommissionerVetoEnabled: row.CommissionerVetoEnabled,
		AllowMultiTeamTrades:    row.AllowMultiTeamTrades,
		MaxTeamsInTrade:         row.MaxTeamsInTrade,
		AllowFutureDraftPicks:   row.AllowFutureDraftPicks,
		MaxFutureYears:          row.MaxFutureYears,
		AllowFAABTrades:         row.AllowFaabTrades,
		AutoApprovalEnabled:     row.AutoApprovalEnabled,
		AutoApprovalFairness:    row.AutoApprovalFairness,
	}
	if row.TradeDeadline != nil {
		settings.TradeDeadline = *row.TradeDeadline
	}
	return settings, nil
}

func (ls *Leagues) RosterRules(ctx context.Context, leagueID string) (types.RosterRules, error) {
	defer metrics.StartSQLQuery("Leagues", "RosterRules")()

	var row leagueSettingsRow
	err := pgxscan.Get(ctx, ls.Connection, &row, `
		SELECT max_roster_size, position_limits
		FROM league_settings
		WHERE league_id = $1`,
		leagueID)
	if pgxscan.NotFound(err) {
		return types.RosterRules{}, nil
	}
	if err != nil {
		return types.RosterRules{}, err
	}

	rules := types.RosterRules{MaxRosterSize: row.MaxRosterSize}
	if len(row.PositionLimits) > 0 {
		if err := json.Unmarshal(row.PositionLimits, &rules.PositionLimits); err != nil {
			return types.RosterRules{}, errors.Wrap(err, "parsing position limits")
		}
	}
	return rules, nil
}
