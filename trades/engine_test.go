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
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/trades/mocks"
	"github.com/astralfield/tradecore/types"
)

type testEngine struct {
	*trades.Engine
	ctrl      *gomock.Controller
	store     *mocks.MockTradeStore
	votes     *mocks.MockVoteStore
	teams     *mocks.MockTeams
	ownership *mocks.MockOwnership
	settings  *mocks.MockSettings
	rosters   *mocks.MockRosters
	analyzer  *mocks.MockAnalyzer
	settler   *mocks.MockSettler
	broker    *mocks.MockBroker
	now       time.Time
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	e := &testEngine{
		ctrl:      ctrl,
		store:     mocks.NewMockTradeStore(ctrl),
		votes:     mocks.NewMockVoteStore(ctrl),
		teams:     mocks.NewMockTeams(ctrl),
		ownership: mocks.NewMockOwnership(ctrl),
		settings:  mocks.NewMockSettings(ctrl),
		rosters:   mocks.NewMockRosters(ctrl),
		analyzer:  mocks.NewMockAnalyzer(ctrl),
		settler:   mocks.NewMockSettler(ctrl),
		broker:    mocks.NewMockBroker(ctrl),
		now:       time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	timeService := mocks.NewMockTimeService(ctrl)
	timeService.EXPECT().GetTimeNow().AnyTimes().Return(e.now)
	e.broker.EXPECT().Send(gomock.Any()).AnyTimes()

	e.Engine = trades.New(
		logging.NewTestLogger(),
		trades.NewDefaultConfig(),
		e.store,
		e.votes,
		e.teams,
		e.ownership,
		e.settings,
		e.rosters,
		e.analyzer,
		e.settler,
		timeService,
		e.broker,
	)
	return e
}

func openSettings() types.TradeSettings {
	s := types.DefaultTradeSettings()
	s.MaxTeamsInTrade = 4
	return s
}

func twoPartySubmission() *types.TradeSubmission {
	return &types.TradeSubmission{
		LeagueID:        "league-1",
		ProposingTeamID: "team-a",
		ReceivingTeamID: "team-b",
		ProposedPlayers: []types.TradeItem{
			{PlayerID: "p1", PlayerName: "Player One", Position: "RB", CurrentValue: num.DecimalFromInt64(50)},
		},
		RequestedPlayers: []types.TradeItem{
			{PlayerID: "p2", PlayerName: "Player Two", Position: "WR", CurrentValue: num.DecimalFromInt64(60)},
		},
		ExpirationDate: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func (e *testEngine) expectLeaguePolicy(settings types.TradeSettings, rules types.RosterRules) {
	e.settings.EXPECT().TradeSettings(gomock.Any(), "league-1").Times(1).Return(settings, nil)
	e.settings.EXPECT().RosterRules(gomock.Any(), "league-1").Times(1).Return(rules, nil)
}

func (e *testEngine) expectValidTwoPartySubmission() {
	e.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-a").Times(1).Return(true, nil)
	e.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-b").Times(1).Return(true, nil)
	e.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p1").Times(1).Return("team-a", nil)
	e.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p2").Times(1).Return("team-b", nil)
}

func (e *testEngine) expectProposalPlumbing(fairness int64) {
	e.analyzer.EXPECT().SnapshotValues(gomock.Any(), gomock.Any()).Times(1)
	e.teams.EXPECT().TeamsInLeague(gomock.Any(), "league-1").Times(1).
		Return([]string{"team-a", "team-b", "team-c", "team-d", "team-e", "team-f", "team-g", "team-h", "team-i", "team-j"}, nil)
	e.analyzer.EXPECT().AnalyzeTrade(gomock.Any(), gomock.Any()).Times(1).
		Return(&types.TradeAnalysis{FairnessScore: num.DecimalFromInt64(fairness)})
}

func TestProposeTrade(t *testing.T) {
	t.Run("Proposing a valid trade stores it pending", testProposeValidTradeSucceeds)
	t.Run("Proposing a trade with yourself fails", testProposeSelfTradeFails)
	t.Run("Proposing a trade with an unowned asset fails", testProposeUnownedAssetFails)
	t.Run("Proposing past the trade deadline fails", testProposePastDeadlineFails)
	t.Run("An already elapsed expiration window fails", testProposeElapsedExpirationFails)
	t.Run("An unset expiration defaults to the league review period", testProposeDefaultsReviewWindow)
	t.Run("Auto approval settles a fair trade immediately", testProposeAutoApprovalSettles)
}

func testProposeValidTradeSucceeds(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.expectValidTwoPartySubmission()
	eng.expectProposalPlumbing(80)
	eng.store.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	p, err := eng.ProposeTrade(context.Background(), twoPartySubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, types.TradeStatusPending, p.Status)
	assert.Equal(t, eng.now, p.CreatedAt)
	// 8 eligible voters at 50 percent, rounded up
	assert.EqualValues(t, 4, p.VetoThreshold)
}

func testProposeSelfTradeFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := twoPartySubmission()
	sub.ReceivingTeamID = sub.ProposingTeamID
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})

	_, err := eng.ProposeTrade(context.Background(), sub)
	assert.ErrorIs(t, err, trades.ErrSelfTrade)
}

func testProposeUnownedAssetFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-a").Times(1).Return(true, nil)
	eng.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-b").Times(1).Return(true, nil)
	// p1 changed hands since the submission was drafted
	eng.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p1").Times(1).Return("team-c", nil)

	_, err := eng.ProposeTrade(context.Background(), twoPartySubmission())
	assert.ErrorIs(t, err, trades.ErrAssetNotOwned)
}

func testProposePastDeadlineFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	settings := openSettings()
	settings.TradeDeadline = eng.now.Add(-time.Hour)
	eng.expectLeaguePolicy(settings, types.RosterRules{})

	_, err := eng.ProposeTrade(context.Background(), twoPartySubmission())
	assert.ErrorIs(t, err, trades.ErrTradeDeadlinePassed)
}

func testProposeElapsedExpirationFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := twoPartySubmission()
	sub.ExpirationDate = eng.now.Add(-time.Minute)
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})

	_, err := eng.ProposeTrade(context.Background(), sub)
	assert.ErrorIs(t, err, trades.ErrExpirationInPast)
}

func testProposeDefaultsReviewWindow(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	sub := twoPartySubmission()
	sub.ExpirationDate = time.Time{}
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.expectValidTwoPartySubmission()
	eng.expectProposalPlumbing(80)
	eng.store.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	p, err := eng.ProposeTrade(context.Background(), sub)
	require.NoError(t, err)
	// without a review window the trade would pend forever
	assert.Equal(t, eng.now.Add(24*time.Hour), p.ExpirationDate)
}

func testProposeAutoApprovalSettles(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	settings := openSettings()
	settings.AutoApprovalEnabled = true
	settings.AutoApprovalFairness = 70
	eng.expectLeaguePolicy(settings, types.RosterRules{})
	eng.expectValidTwoPartySubmission()
	eng.expectProposalPlumbing(85)
	eng.store.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	// accepted, then completed
	eng.store.EXPECT().Update(gomock.Any(), gomock.Any()).Times(2).Return(nil)
	eng.settler.EXPECT().SettleTrade(gomock.Any(), gomock.Any()).Times(1).Return([]types.AssetFlow{}, nil)

	p, err := eng.ProposeTrade(context.Background(), twoPartySubmission())
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusCompleted, p.Status)
}

func pendingTrade() *types.TradeProposal {
	return &types.TradeProposal{
		ID:              "trade-1",
		LeagueID:        "league-1",
		ProposingTeamID: "team-a",
		ReceivingTeamID: "team-b",
		ProposedPlayers: []types.TradeItem{
			{PlayerID: "p1", Position: "RB", CurrentValue: num.DecimalFromInt64(50)},
		},
		RequestedPlayers: []types.TradeItem{
			{PlayerID: "p2", Position: "WR", CurrentValue: num.DecimalFromInt64(60)},
		},
		Status:        types.TradeStatusPending,
		VetoVoters:    []string{},
		VetoThreshold: 2,
	}
}

func TestRespondToTrade(t *testing.T) {
	t.Run("Accepting a pending trade settles it", testAcceptSettles)
	t.Run("A settlement failure marks the trade failed", testAcceptSettlementFailure)
	t.Run("Rejecting a pending trade retires it", testRejectRetires)
	t.Run("Only the receiving team can respond", testRespondWrongTeam)
	t.Run("Responding to a settled trade is a conflict", testRespondTerminalConflict)
	t.Run("A counter offer swaps the roles and links the trades", testCounterOffer)
}

func testAcceptSettles(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)
	eng.store.EXPECT().Update(gomock.Any(), gomock.Any()).Times(2).Return(nil)
	eng.settler.EXPECT().SettleTrade(gomock.Any(), gomock.Any()).Times(1).Return([]types.AssetFlow{}, nil)

	p, err := eng.RespondToTrade(context.Background(), "trade-1", "team-b", types.AcceptResponse())
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusCompleted, p.Status)
	require.NotNil(t, p.ProcessedAt)
	assert.Equal(t, eng.now, *p.ProcessedAt)
}

func testAcceptSettlementFailure(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)
	eng.store.EXPECT().Update(gomock.Any(), gomock.Any()).Times(2).Return(nil)
	eng.settler.EXPECT().SettleTrade(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, errors.New("player already moved"))

	p, err := eng.RespondToTrade(context.Background(), "trade-1", "team-b", types.AcceptResponse())
	require.Error(t, err)
	assert.Equal(t, types.TradeStatusFailed, p.Status)
}

func testRejectRetires(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)
	eng.store.EXPECT().Update(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	p, err := eng.RespondToTrade(context.Background(), "trade-1", "team-b", types.RejectResponse())
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusRejected, p.Status)
}

func testRespondWrongTeam(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)

	_, err := eng.RespondToTrade(context.Background(), "trade-1", "team-c", types.AcceptResponse())
	assert.ErrorIs(t, err, trades.ErrOnlyReceivingTeamCanRespond)
}

func testRespondTerminalConflict(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	settled := pendingTrade()
	settled.Status = types.TradeStatusCompleted
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(settled, nil)

	_, err := eng.RespondToTrade(context.Background(), "trade-1", "team-b", types.AcceptResponse())
	assert.ErrorIs(t, err, trades.ErrTradeAlreadyProcessed)
}

func testCounterOffer(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	orig := pendingTrade()
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(orig, nil)

	// counter submission goes through the full proposal pipeline with the
	// roles swapped
	eng.expectLeaguePolicy(openSettings(), types.RosterRules{})
	eng.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-b").Times(1).Return(true, nil)
	eng.teams.EXPECT().Exists(gomock.Any(), "league-1", "team-a").Times(1).Return(true, nil)
	eng.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p2").Times(1).Return("team-b", nil)
	eng.ownership.EXPECT().PlayerOwner(gomock.Any(), "league-1", "p1").Times(1).Return("team-a", nil)
	eng.expectProposalPlumbing(75)
	eng.store.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.store.EXPECT().Update(gomock.Any(), orig).Times(1).Return(nil)

	counterSub := &types.TradeSubmission{
		ProposedPlayers: []types.TradeItem{
			{PlayerID: "p2", Position: "WR", CurrentValue: num.DecimalFromInt64(60)},
		},
		RequestedPlayers: []types.TradeItem{
			{PlayerID: "p1", Position: "RB", CurrentValue: num.DecimalFromInt64(50)},
		},
		ExpirationDate: eng.now.Add(24 * time.Hour),
	}
	counter, err := eng.RespondToTrade(context.Background(), "trade-1", "team-b", types.CounterResponse(counterSub))
	require.NoError(t, err)
	assert.Equal(t, "team-b", counter.ProposingTeamID)
	assert.Equal(t, "team-a", counter.ReceivingTeamID)
	assert.Equal(t, types.TradeStatusCountered, orig.Status)
	assert.Equal(t, counter.ID, orig.CounterOfferID)
	assert.NotEqual(t, orig.ID, counter.ID)
}

func TestOnTick(t *testing.T) {
	t.Run("Pending trades past their expiration expire", testOnTickExpires)
	t.Run("The sweep is a no-op on trades already processed", testOnTickIdempotent)
}

func testOnTickExpires(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	eng.store.EXPECT().ListExpired(gomock.Any(), eng.now).Times(1).Return([]*types.TradeProposal{p}, nil)
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.store.EXPECT().Update(gomock.Any(), p).Times(1).Return(nil)
	eng.store.EXPECT().ListExpiredMultiTeam(gomock.Any(), eng.now).Times(1).Return(nil, nil)

	eng.OnTick(context.Background(), eng.now)
	assert.Equal(t, types.TradeStatusExpired, p.Status)
}

func testOnTickIdempotent(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	// the trade transitioned between the listing and the sweep visit
	p := pendingTrade()
	listed := *p
	p.Status = types.TradeStatusCompleted
	eng.store.EXPECT().ListExpired(gomock.Any(), eng.now).Times(1).Return([]*types.TradeProposal{&listed}, nil)
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.store.EXPECT().ListExpiredMultiTeam(gomock.Any(), eng.now).Times(1).Return(nil, nil)

	eng.OnTick(context.Background(), eng.now)
	assert.Equal(t, types.TradeStatusCompleted, p.Status)
}
