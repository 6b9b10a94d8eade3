package trades_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfield/tradecore/libs/num"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/types"
)

// threeTeamSubmission builds a circular exchange: x gives p1 to y, y gives p2
// to z, z gives p3 to x.
func threeTeamSubmission() *types.MultiTeamTradeSubmission {
	p1 := types.TradeItem{PlayerID: "p1", Position: "RB", CurrentValue: num.DecimalFromInt64(40)}
	p2 := types.TradeItem{PlayerID: "p2", Position: "WR", CurrentValue: num.DecimalFromInt64(42)}
	p3 := types.TradeItem{PlayerID: "p3", Position: "TE", CurrentValue: num.DecimalFromInt64(38)}
	return &types.MultiTeamTradeSubmission{
		LeagueID:         "league-1",
		InitiatingTeamID: "team-x",
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{p1}, ReceivingPlayers: []types.TradeItem{p3}},
			{TeamID: "team-y", GivingPlayers: []types.TradeItem{p2}, ReceivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-z", GivingPlayers: []types.TradeItem{p3}, ReceivingPlayers: []types.TradeItem{p2}},
		},
		ExpirationDate: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
}

func pendingMultiTeamTrade() *types.MultiTeamTrade {
	sub := threeTeamSubmission()
	t := &types.MultiTeamTrade{
		ID:               "mtt-1",
		LeagueID:         "league-1",
		InitiatingTeamID: "team-x",
		Teams:            sub.Teams,
		Status:           types.TradeStatusPending,
		AcceptedTeams:    []string{"team-x"},
		VetoVoters:       []string{},
		VetoThreshold:    4,
	}
	t.Teams[0].HasAccepted = true
	return t
}

func TestProposeMultiTeamTrade(t *testing.T) {
	t.Run("Proposing a valid three-team trade auto-accepts the initiator", testProposeMultiTeamSucceeds)
	t.Run("A pure-gift participant is rejected", testProposeMultiTeamPureGift)
	t.Run("A receive nobody gives is rejected at resolution", testProposeMultiTeamPhantomReceive)
	t.Run("An unset expiration defaults to the league review period", testProposeMultiTeamDefaultsReviewWindow)
	t.Run("Two teams are not a multi-team trade", testProposeMultiTeamTooFewTeams)
}

func (e *testEngine) expectValidThreeTeamSubmission() {
	for _, teamID := range []string{"team-x", "team-y", "team-z"} {
		e.teams.EXPECT().Exists(gomock.Any(), "league-1", teamID).Times(1).Return(true, nil)
	}
	e.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p1").Times(1).Return("team-x", nil)
	e.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p2").Times(1).Return("team-y", nil)
	e.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p3").Times(1).Return("team-z", nil)
	e.analyzer.EXPECT().SnapshotMultiTeamValues(gomock.Any(), gomock.Any()).Times(1)
	e.teams.EXPECT().TeamsInLeague(gomock.Any(), "league-1").Times(1).
		Return([]string{"team-x", "team-y", "team-z", "team-1", "team-2", "team-3", "team-4"}, nil)
}

func testProposeMultiTeamSucceeds(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.expectValidThreeTeamSubmission()
	eng.analyzer.EXPECT().AnalyzeMultiTeamTrade(gomock.Any(), gomock.Any()).Times(1).
		Return(&types.MultiTeamTradeAnalysis{OverallFairnessScore: num.DecimalFromInt64(90)})
	eng.store.EXPECT().AddMultiTeam(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	mt, err := eng.ProposeMultiTeamTrade(context.Background(), threeTeamSubmission())
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusPending, mt.Status)
	assert.Equal(t, []string{"team-x"}, mt.AcceptedTeams)
	require.NotNil(t, mt.Team("team-x"))
	assert.True(t, mt.Team("team-x").HasAccepted)
	// each player moves giver to receiver
	assert.Len(t, mt.Flows, 3)
	// 4 eligible voters at 50 percent
	assert.EqualValues(t, 2, mt.VetoThreshold)
}

func testProposeMultiTeamPureGift(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := threeTeamSubmission()
	sub.Teams[0].ReceivingPlayers = nil
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-x").Times(1).Return(true, nil)

	_, err := eng.ProposeMultiTeamTrade(context.Background(), sub)
	assert.ErrorIs(t, err, trades.ErrTeamMustGiveAndReceive)
}

func testProposeMultiTeamPhantomReceive(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	// team-z still gives p3 away but the only player it claims back is given
	// by nobody; the non-empty receive list alone must not carry it through
	sub := threeTeamSubmission()
	sub.Teams[0].ReceivingPlayers = append(sub.Teams[0].ReceivingPlayers, sub.Teams[2].ReceivingPlayers...)
	sub.Teams[2].ReceivingPlayers = []types.TradeItem{{PlayerID: "p9", Position: "QB"}}
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.expectValidThreeTeamSubmission()

	_, err := eng.ProposeMultiTeamTrade(context.Background(), sub)
	assert.ErrorIs(t, err, settlement.ErrNoGiverForAsset)
}

func testProposeMultiTeamDefaultsReviewWindow(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := threeTeamSubmission()
	sub.ExpirationDate = time.Time{}
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.expectValidThreeTeamSubmission()
	eng.analyzer.EXPECT().AnalyzeMultiTeamTrade(gomock.Any(), gomock.Any()).Times(1).
		Return(&types.MultiTeamTradeAnalysis{OverallFairnessScore: num.DecimalFromInt64(90)})
	eng.store.EXPECT().AddMultiTeam(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	mt, err := eng.ProposeMultiTeamTrade(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, eng.now.Add(24*time.Hour), mt.ExpirationDate)
}

func testProposeMultiTeamTooFewTeams(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := threeTeamSubmission()
	sub.Teams = sub.Teams[:2]
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})

	_, err := eng.ProposeMultiTeamTrade(context.Background(), sub)
	assert.ErrorIs(t, err, trades.ErrTooFewTeams)
}

func TestAcceptMultiTeamTrade(t *testing.T) {
	t.Run("An intermediate acceptance keeps the trade pending", testAcceptMultiTeamIntermediate)
	t.Run("The final acceptance settles the trade", testAcceptMultiTeamFinalSettles)
	t.Run("A settlement failure marks the trade failed", testAcceptMultiTeamSettlementFailure)
	t.Run("Accepting twice is rejected", testAcceptMultiTeamTwice)
	t.Run("Outsiders cannot accept", testAcceptMultiTeamOutsider)
}

func testAcceptMultiTeamIntermediate(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	mt := pendingMultiTeamTrade()
	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(mt, nil)
	eng.store.EXPECT().UpdateMultiTeam(gomock.Any(), mt).Times(1).Return(nil)

	out, err := eng.AcceptMultiTeamTrade(context.Background(), "mtt-1", "team-y")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusPending, out.Status)
	assert.ElementsMatch(t, []string{"team-x", "team-y"}, out.AcceptedTeams)
	require.NotNil(t, out.Team("team-y").AcceptedAt)
}

func testAcceptMultiTeamFinalSettles(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	mt := pendingMultiTeamTrade()
	mt.AcceptedTeams = []string{"team-x", "team-y"}
	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(mt, nil)
	// acceptance, accepted, completed
	eng.store.EXPECT().UpdateMultiTeam(gomock.Any(), mt).Times(3).Return(nil)
	eng.settler.EXPECT().SettleMultiTeamTrade(gomock.Any(), mt).Times(1).Return(mt.Flows, nil)

	out, err := eng.AcceptMultiTeamTrade(context.Background(), "mtt-1", "team-z")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusCompleted, out.Status)
	require.NotNil(t, out.ProcessedAt)
}

func testAcceptMultiTeamSettlementFailure(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	mt := pendingMultiTeamTrade()
	mt.AcceptedTeams = []string{"team-x", "team-y"}
	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(mt, nil)
	eng.store.EXPECT().UpdateMultiTeam(gomock.Any(), mt).Times(3).Return(nil)
	eng.settler.EXPECT().SettleMultiTeamTrade(gomock.Any(), mt).Times(1).
		Return(nil, errors.New("insufficient FAAB balance"))

	out, err := eng.AcceptMultiTeamTrade(context.Background(), "mtt-1", "team-z")
	require.Error(t, err)
	assert.Equal(t, types.TradeStatusFailed, out.Status)
}

func testAcceptMultiTeamTwice(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(pendingMultiTeamTrade(), nil)

	_, err := eng.AcceptMultiTeamTrade(context.Background(), "mtt-1", "team-x")
	assert.ErrorIs(t, err, trades.ErrTeamAlreadyAccepted)
}

func testAcceptMultiTeamOutsider(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(pendingMultiTeamTrade(), nil)

	_, err := eng.AcceptMultiTeamTrade(context.Background(), "mtt-1", "team-q")
	assert.ErrorIs(t, err, trades.ErrTeamNotInTrade)
}
