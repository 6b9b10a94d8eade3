package types

import "time"

// TradeSettings is the league policy read from the league settings provider.
type TradeSettings struct {
	TradeDeadline           time.Time
	ReviewPeriod            time.Duration
	VetoPercentage          uint64
	CommissionerVetoEnabled bool
	AllowMultiTeamTrades    bool
	MaxTeamsInTrade         int
	AllowFutureDraftPicks   bool
	MaxFutureYears          int
	AllowFAABTrades         bool
	AutoApprovalEnabled     bool
	AutoApprovalFairness    float64
}

// DefaultTradeSettings are the fallbacks applied when a league leaves a
// setting unset.
func DefaultTradeSettings() TradeSettings {
	return TradeSettings{
		ReviewPeriod:            24 * time.Hour,
		VetoPercentage:          50,
		CommissionerVetoEnabled: true,
		AllowMultiTeamTrades:    true,
		MaxTeamsInTrade:         3,
		AllowFutureDraftPicks:   true,
		MaxFutureYears:          2,
		AllowFAABTrades:         true,
		AutoApprovalEnabled:     false,
		AutoApprovalFairness:    70,
	}
}

// RosterRules are the league roster constraints simulated during validation.
type RosterRules struct {
	MaxRosterSize int
	// PositionLimits caps the number of players per position, zero meaning
	// no limit for that position.
	PositionLimits map[string]int
}
