package analysis

import (
	"context"
	"fmt"

	"github.com/astralfield/tradecore/libs/num"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// Valuation is the external asset valuation provider. Calls are side effect
// free; failures degrade analysis quality but never block a proposal.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/astralfield/tradecore/analysis Valuation,Rosters
type Valuation interface {
	ValuePlayer(ctx context.Context, playerID string) (num.Decimal, error)
	ValuePick(ctx context.Context, pick types.DraftPickItem) (num.Decimal, error)
}

// Rosters provides read access to current team rosters for the risk and
// positional impact heuristics.
type Rosters interface {
	GetRoster(ctx context.Context, teamID string) ([]types.RosterPlayer, error)
}

// Thresholds on the percentage value difference between the two sides.
var (
	moderateDiff    = num.DecimalFromInt64(15)
	significantDiff = num.DecimalFromInt64(25)
	winnerDiff      = num.DecimalFromInt64(10)
	two             = num.DecimalFromInt64(2)
	elevatedInjury  = num.DecimalFromFloat(0.3)
)

// Engine computes advisory trade analyses. Reports are derived from current
// valuations and roster state only, the engine holds no trade state.
type Engine struct {
	Config
	log *logging.Logger

	valuation Valuation
	rosters   Rosters
	faabRate  num.Decimal
}

// New instantiates the analysis engine.
func New(log *logging.Logger, cfg Config, valuation Valuation, rosters Rosters) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:    cfg,
		log:       log,
		valuation: valuation,
		rosters:   rosters,
		faabRate:  num.DecimalFromFloat(cfg.FAABPointsPerUnit),
	}
}

// ReloadConf updates the internal configuration of the analysis engine.
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
	e.faabRate = num.DecimalFromFloat(cfg.FAABPointsPerUnit)
}

// SnapshotValues fills missing valuation snapshots on the submission from the
// valuation provider. Provider errors leave the snapshot untouched, a
// proposal is never blocked on valuation.
func (e *Engine) SnapshotValues(ctx context.Context, sub *types.TradeSubmission) {
	e.snapshotItems(ctx, sub.ProposedPlayers)
	e.snapshotItems(ctx, sub.RequestedPlayers)
	e.snapshotPicks(ctx, sub.ProposedDraftPicks)
	e.snapshotPicks(ctx, sub.RequestedDraftPicks)
}

// SnapshotMultiTeamValues does the same for a multi-team submission.
func (e *Engine) SnapshotMultiTeamValues(ctx context.Context, sub *types.MultiTeamTradeSubmission) {
	for i := range sub.Teams {
		e.snapshotItems(ctx, sub.Teams[i].GivingPlayers)
		e.snapshotItems(ctx, sub.Teams[i].ReceivingPlayers)
		e.snapshotPicks(ctx, sub.Teams[i].GivingDraftPicks)
		e.snapshotPicks(ctx, sub.Teams[i].ReceivingDraftPicks)
	}
}

func (e *Engine) snapshotItems(ctx context.Context, items []types.TradeItem) {
	for i := range items {
		if !items[i].CurrentValue.IsZero() {
			continue
		}
		v, err := e.valuation.ValuePlayer(ctx, items[i].PlayerID)
		if err != nil {
			e.log.Debug("could not value player, keeping snapshot",
				logging.String("player-id", items[i].PlayerID),
				logging.Error(err),
			)
			continue
		}
		items[i].CurrentValue = v
	}
}

func (e *Engine) snapshotPicks(ctx context.Context, picks []types.DraftPickItem) {
	for i := range picks {
		if !picks[i].EstimatedValue.IsZero() {
			continue
		}
		v, err := e.valuation.ValuePick(ctx, picks[i])
		if err != nil {
			e.log.Debug("could not value pick, keeping snapshot",
				logging.Int("year", picks[i].Year),
				logging.Int("round", picks[i].Round),
				logging.Error(err),
			)
			continue
		}
		picks[i].EstimatedValue = v
	}
}

// AnalyzeTrade computes the advisory report for a two-party proposal. It
// always succeeds with best effort data.
func (e *Engine) AnalyzeTrade(ctx context.Context, p *types.TradeProposal) *types.TradeAnalysis {
	defer metrics.StartEngineTime(namedLogger, "AnalyzeTrade")()

	proposingValue := e.sideValue(p.ProposedPlayers, p.ProposedDraftPicks, p.FAABAmount)
	receivingValue := e.sideValue(p.RequestedPlayers, p.RequestedDraftPicks, 0)

	netDifference := proposingValue.Sub(receivingValue).Abs()
	pctDiff := num.DecimalZero()
	if avg := num.AvgD(proposingValue, receivingValue); avg.IsPositive() {
		pctDiff = netDifference.Div(avg).Mul(num.DecimalHundred())
	}

	fairness := num.MaxD(num.DecimalZero(), num.DecimalHundred().Sub(pctDiff.Mul(two)))
	advantage := types.AdvantageSlight
	if pctDiff.GreaterThan(significantDiff) {
		advantage = types.AdvantageSignificant
		fairness = num.MaxD(fairness.Sub(num.DecimalFromInt64(20)), num.DecimalZero())
	} else if pctDiff.GreaterThan(moderateDiff) {
		advantage = types.AdvantageModerate
		fairness = num.MaxD(fairness.Sub(num.DecimalFromInt64(10)), num.DecimalZero())
	}

	winningTeam := ""
	if pctDiff.GreaterThan(winnerDiff) {
		winningTeam = p.ReceivingTeamID
		if proposingValue.GreaterThan(receivingValue) {
			winningTeam = p.ProposingTeamID
		}
	}

	// proposed players leave the proposing roster, requested players leave
	// the receiving roster
	players := e.playerIndex(ctx, p.ProposingTeamID, p.ReceivingTeamID)

	return &types.TradeAnalysis{
		FairnessScore:    fairness,
		WinningTeam:      winningTeam,
		Advantage:        advantage,
		RedFlags:         e.redFlags(p, players, pctDiff),
		PositionalImpact: positionalImpact(p),
		ValueExchange: types.ValueExchange{
			ProposingTeamValue:   proposingValue,
			ReceivingTeamValue:   receivingValue,
			NetDifference:        netDifference,
			PercentageDifference: pctDiff,
		},
		RiskAssessment: riskAssessment(p, players),
		FutureImpact:   futureImpact(p),
	}
}

// AnalyzeMultiTeamTrade computes the advisory report for a multi-team trade.
func (e *Engine) AnalyzeMultiTeamTrade(ctx context.Context, t *types.MultiTeamTrade) *types.MultiTeamTradeAnalysis {
	defer metrics.StartEngineTime(namedLogger, "AnalyzeMultiTeamTrade")()

	players := e.playerIndex(ctx, t.Participants()...)

	teamAnalysis := make([]types.TeamBenefit, 0, len(t.Teams))
	totalBenefit := num.DecimalZero()
	for _, tm := range t.Teams {
		givingValue := e.sideValue(tm.GivingPlayers, tm.GivingDraftPicks, tm.FAABGiving)
		receivingValue := e.sideValue(tm.ReceivingPlayers, tm.ReceivingDraftPicks, tm.FAABReceiving)
		benefit := receivingValue.Sub(givingValue)
		teamAnalysis = append(teamAnalysis, types.TeamBenefit{
			TeamID:       tm.TeamID,
			BenefitScore: benefit,
			RiskScore:    teamRiskScore(tm.ReceivingPlayers, players),
		})
		totalBenefit = totalBenefit.Add(benefit.Abs())
	}

	fairness := num.DecimalHundred()
	if len(t.Teams) > 0 {
		fairness = num.MaxD(num.DecimalZero(),
			num.DecimalHundred().Sub(totalBenefit.Div(num.DecimalFromInt64(int64(len(t.Teams))))))
	}
	complexity := complexityScore(t)

	action := types.ActionApprove
	switch {
	case fairness.LessThan(num.DecimalFromInt64(40)) || complexity.GreaterThan(num.DecimalFromInt64(80)):
		action = types.ActionReject
	case fairness.LessThan(num.DecimalFromInt64(60)) || complexity.GreaterThan(num.DecimalFromInt64(60)):
		action = types.ActionReview
	}

	return &types.MultiTeamTradeAnalysis{
		OverallFairnessScore: fairness,
		TeamAnalysis:         teamAnalysis,
		ComplexityScore:      complexity,
		RecommendedAction:    action,
	}
}

// sideValue totals player snapshots, pick estimates and the FAAB conversion
// for one side of an exchange.
func (e *Engine) sideValue(players []types.TradeItem, picks []types.DraftPickItem, faab uint64) num.Decimal {
	total := num.DecimalZero()
	for _, p := range players {
		total = total.Add(p.CurrentValue)
	}
	for _, pk := range picks {
		total = total.Add(pk.EstimatedValue)
	}
	if faab > 0 {
		total = total.Add(num.DecimalFromInt64(int64(faab)).Mul(e.faabRate))
	}
	return total
}

// playerIndex fetches the given teams' rosters and indexes them by player id.
// Roster service errors degrade to a partial index.
func (e *Engine) playerIndex(ctx context.Context, teamIDs ...string) map[string]types.RosterPlayer {
	idx := map[string]types.RosterPlayer{}
	for _, teamID := range teamIDs {
		roster, err := e.rosters.GetRoster(ctx, teamID)
		if err != nil {
			e.log.Debug("could not load roster for analysis",
				logging.TeamID(teamID),
				logging.Error(err),
			)
			continue
		}
		for _, pl := range roster {
			idx[pl.PlayerID] = pl
		}
	}
	return idx
}

// complexityScore grows with participant and asset count, capped at 100.
func complexityScore(t *types.MultiTeamTrade) num.Decimal {
	teams := len(t.Teams)
	score := num.DecimalFromInt64(int64((teams - 2) * 25)).
		Add(num.DecimalFromInt64(int64(t.AssetCount() * 5)))
	return num.MinD(num.DecimalHundred(), num.MaxD(num.DecimalZero(), score))
}

func (e *Engine) redFlags(p *types.TradeProposal, players map[string]types.RosterPlayer, pctDiff num.Decimal) []string {
	flags := []string{}
	if pctDiff.GreaterThan(significantDiff) {
		flags = append(flags, "trade value is significantly lopsided")
	}
	for _, it := range allItems(p) {
		pl, ok := players[it.PlayerID]
		if !ok {
			continue
		}
		if injuryRisk(pl).GreaterThan(elevatedInjury) {
			flags = append(flags, fmt.Sprintf("%s has elevated injury risk", it.PlayerName))
		}
	}
	for _, pk := range allPicks(p) {
		if pk.IsConditional {
			flags = append(flags, fmt.Sprintf("conditional %d round %d pick requires manual review", pk.Year, pk.Round))
		}
	}
	return flags
}

func allItems(p *types.TradeProposal) []types.TradeItem {
	out := make([]types.TradeItem, 0, len(p.ProposedPlayers)+len(p.RequestedPlayers))
	out = append(out, p.ProposedPlayers...)
	out = append(out, p.RequestedPlayers...)
	return out
}

func allPicks(p *types.TradeProposal) []types.DraftPickItem {
	out := make([]types.DraftPickItem, 0, len(p.ProposedDraftPicks)+len(p.RequestedDraftPicks))
	out = append(out, p.ProposedDraftPicks...)
	out = append(out, p.RequestedDraftPicks...)
	return out
}

// injuryRisk is a 0-1 score: a small base risk, more when not healthy, more
// again past age 30.
func injuryRisk(pl types.RosterPlayer) num.Decimal {
	risk := num.DecimalFromFloat(0.1)
	if pl.InjuryStatus != "" && pl.InjuryStatus != types.HealthyStatus {
		risk = risk.Add(num.DecimalFromFloat(0.2))
	}
	if pl.Age > 30 {
		risk = risk.Add(num.DecimalFromFloat(0.15))
	}
	return num.MinD(num.DecimalOne(), risk)
}

// teamRiskScore is 0-100 for the players a team receives: the average injury
// risk when roster attributes are known, value concentration otherwise.
func teamRiskScore(incoming []types.TradeItem, players map[string]types.RosterPlayer) num.Decimal {
	if len(incoming) == 0 {
		return num.DecimalZero()
	}
	known := 0
	riskSum := num.DecimalZero()
	total := num.DecimalZero()
	max := num.DecimalZero()
	for _, it := range incoming {
		if pl, ok := players[it.PlayerID]; ok {
			riskSum = riskSum.Add(injuryRisk(pl))
			known++
		}
		total = total.Add(it.CurrentValue)
		max = num.MaxD(max, it.CurrentValue)
	}
	if known > 0 {
		return riskSum.Div(num.DecimalFromInt64(int64(known))).Mul(num.DecimalHundred())
	}
	if !total.IsPositive() {
		return num.DecimalZero()
	}
	return max.Div(total).Mul(num.DecimalHundred())
}

func positionalImpact(p *types.TradeProposal) []types.PositionalImpact {
	out := []types.PositionalImpact{}
	out = append(out, teamPositionalImpact(p.ProposingTeamID, p.RequestedPlayers, p.ProposedPlayers)...)
	out = append(out, teamPositionalImpact(p.ReceivingTeamID, p.ProposedPlayers, p.RequestedPlayers)...)
	return out
}

// teamPositionalImpact nets incoming against outgoing value per position,
// clamped to [-100, 100].
func teamPositionalImpact(teamID string, incoming, outgoing []types.TradeItem) []types.PositionalImpact {
	positions := map[string]*types.PositionalImpact{}
	order := []string{}
	get := func(pos string) *types.PositionalImpact {
		pi, ok := positions[pos]
		if !ok {
			pi = &types.PositionalImpact{TeamID: teamID, Position: pos}
			positions[pos] = pi
			order = append(order, pos)
		}
		return pi
	}
	for _, it := range incoming {
		pi := get(it.Position)
		pi.StrengthChange = pi.StrengthChange.Add(it.CurrentValue)
		pi.DepthChange++
	}
	for _, it := range outgoing {
		pi := get(it.Position)
		pi.StrengthChange = pi.StrengthChange.Sub(it.CurrentValue)
		pi.DepthChange--
	}
	out := make([]types.PositionalImpact, 0, len(positions))
	for _, pos := range order {
		pi := positions[pos]
		pi.StrengthChange = num.MinD(num.DecimalHundred(),
			num.MaxD(num.DecimalHundred().Neg(), pi.StrengthChange))
		pi.StartingLineupImpact = pi.StrengthChange.Abs().GreaterThan(num.DecimalFromInt64(10))
		out = append(out, *pi)
	}
	return out
}

func riskAssessment(p *types.TradeProposal, players map[string]types.RosterPlayer) types.RiskAssessment {
	return types.RiskAssessment{
		InjuryRisk: []types.TeamRiskLevel{
			{TeamID: p.ProposingTeamID, RiskLevel: injuryLevel(p.RequestedPlayers, players)},
			{TeamID: p.ReceivingTeamID, RiskLevel: injuryLevel(p.ProposedPlayers, players)},
		},
		AgeRisk: []types.TeamAgeRisk{
			ageRisk(p.ProposingTeamID, p.RequestedPlayers, players),
			ageRisk(p.ReceivingTeamID, p.ProposedPlayers, players),
		},
		PerformanceRisk: []types.TeamRiskFactors{
			{TeamID: p.ProposingTeamID, RiskFactors: performanceFactors(p.RequestedPlayers)},
			{TeamID: p.ReceivingTeamID, RiskFactors: performanceFactors(p.ProposedPlayers)},
		},
	}
}

// injuryLevel buckets the average injury risk of the players a team takes on.
func injuryLevel(incoming []types.TradeItem, players map[string]types.RosterPlayer) types.RiskLevel {
	known := 0
	sum := num.DecimalZero()
	for _, it := range incoming {
		if pl, ok := players[it.PlayerID]; ok {
			sum = sum.Add(injuryRisk(pl))
			known++
		}
	}
	if known == 0 {
		return types.RiskLevelLow
	}
	avg := sum.Div(num.DecimalFromInt64(int64(known)))
	switch {
	case avg.GreaterThan(elevatedInjury):
		return types.RiskLevelHigh
	case avg.GreaterThan(num.DecimalFromFloat(0.15)):
		return types.RiskLevelMedium
	}
	return types.RiskLevelLow
}

func ageRisk(teamID string, incoming []types.TradeItem, players map[string]types.RosterPlayer) types.TeamAgeRisk {
	known := 0
	ageSum := 0
	for _, it := range incoming {
		if pl, ok := players[it.PlayerID]; ok {
			ageSum += pl.Age
			known++
		}
	}
	out := types.TeamAgeRisk{TeamID: teamID, AvgAge: num.DecimalZero(), RiskLevel: types.RiskLevelLow}
	if known == 0 {
		return out
	}
	out.AvgAge = num.DecimalFromInt64(int64(ageSum)).Div(num.DecimalFromInt64(int64(known)))
	switch {
	case out.AvgAge.GreaterThan(num.DecimalFromInt64(30)):
		out.RiskLevel = types.RiskLevelHigh
	case out.AvgAge.GreaterThan(num.DecimalFromInt64(27)):
		out.RiskLevel = types.RiskLevelMedium
	}
	return out
}

func performanceFactors(incoming []types.TradeItem) []string {
	factors := []string{}
	for _, it := range incoming {
		if it.ProjectedPoints.IsPositive() && it.CurrentValue.GreaterThan(it.ProjectedPoints.Mul(two)) {
			factors = append(factors, fmt.Sprintf("%s is valued well above projection", it.PlayerName))
		}
	}
	return factors
}

func futureImpact(p *types.TradeProposal) types.FutureImpact {
	proposerPoints := projectedPoints(p.RequestedPlayers).Sub(projectedPoints(p.ProposedPlayers))
	proposerCapital := pickValue(p.RequestedDraftPicks).Sub(pickValue(p.ProposedDraftPicks))
	return types.FutureImpact{
		NextSeasonProjection: []types.TeamProjection{
			{TeamID: p.ProposingTeamID, ProjectedChange: proposerPoints},
			{TeamID: p.ReceivingTeamID, ProjectedChange: proposerPoints.Neg()},
		},
		DraftCapitalImpact: []types.TeamProjection{
			{TeamID: p.ProposingTeamID, ProjectedChange: proposerCapital},
			{TeamID: p.ReceivingTeamID, ProjectedChange: proposerCapital.Neg()},
		},
	}
}

func projectedPoints(items []types.TradeItem) num.Decimal {
	total := num.DecimalZero()
	for _, it := range items {
		total = total.Add(it.ProjectedPoints)
	}
	return total
}

func pickValue(picks []types.DraftPickItem) num.Decimal {
	total := num.DecimalZero()
	for _, pk := range picks {
		total = total.Add(pk.EstimatedValue)
	}
	return total
}
