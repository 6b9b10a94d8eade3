package types

import "github.com/astralfield/tradecore/libs/num"

// Advantage classifies how lopsided a two-party trade is.
type Advantage string

const (
	AdvantageSlight      Advantage = "slight"
	AdvantageModerate    Advantage = "moderate"
	AdvantageSignificant Advantage = "significant"
)

// RiskLevel buckets a team's exposure on one risk axis.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RecommendedAction is the analyzer's advisory verdict on a multi-team trade.
type RecommendedAction string

const (
	ActionApprove RecommendedAction = "approve"
	ActionReview  RecommendedAction = "review"
	ActionReject  RecommendedAction = "reject"
)

// TradeAnalysis is the advisory report attached to a two-party proposal.
// Recomputed from valuations and roster state, never hand-edited.
type TradeAnalysis struct {
	// FairnessScore is 0-100, 50 meaning perfectly balanced.
	FairnessScore    num.Decimal
	WinningTeam      string
	Advantage        Advantage
	RedFlags         []string
	PositionalImpact []PositionalImpact
	ValueExchange    ValueExchange
	RiskAssessment   RiskAssessment
	FutureImpact     FutureImpact
}

// PositionalImpact is the roster-strength delta at one position for one team.
type PositionalImpact struct {
	TeamID   string
	Position string
	// StrengthChange is -100 to +100.
	StrengthChange       num.Decimal
	DepthChange          int
	StartingLineupImpact bool
}

// ValueExchange is each side's total value and the gap between them.
type ValueExchange struct {
	ProposingTeamValue   num.Decimal
	ReceivingTeamValue   num.Decimal
	NetDifference        num.Decimal
	PercentageDifference num.Decimal
}

// TeamRiskLevel is one team's bucket on a single risk axis.
type TeamRiskLevel struct {
	TeamID    string
	RiskLevel RiskLevel
}

// TeamAgeRisk is one team's average incoming age and its bucket.
type TeamAgeRisk struct {
	TeamID    string
	AvgAge    num.Decimal
	RiskLevel RiskLevel
}

// TeamRiskFactors lists qualitative performance concerns for one team.
type TeamRiskFactors struct {
	TeamID      string
	RiskFactors []string
}

// RiskAssessment groups injury, age and performance exposure per team.
type RiskAssessment struct {
	InjuryRisk      []TeamRiskLevel
	AgeRisk         []TeamAgeRisk
	PerformanceRisk []TeamRiskFactors
}

// TeamProjection is a per-team projected change.
type TeamProjection struct {
	TeamID          string
	ProjectedChange num.Decimal
}

// FutureImpact projects next-season and draft-capital effects per team.
type FutureImpact struct {
	NextSeasonProjection []TeamProjection
	DraftCapitalImpact   []TeamProjection
}

// TeamBenefit is one participant's net outcome in a multi-team trade.
type TeamBenefit struct {
	TeamID       string
	BenefitScore num.Decimal
	RiskScore    num.Decimal
}

// MultiTeamTradeAnalysis is the advisory report attached to a multi-team
// trade.
type MultiTeamTradeAnalysis struct {
	OverallFairnessScore num.Decimal
	TeamAnalysis         []TeamBenefit
	ComplexityScore      num.Decimal
	RecommendedAction    RecommendedAction
}
