package trades_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/types"
)

func TestVoteOnTrade(t *testing.T) {
	t.Run("An approve vote is recorded without touching the tally", testApproveVoteRecorded)
	t.Run("A veto short of the threshold keeps the trade pending", testVetoBelowThreshold)
	t.Run("The veto reaching the threshold vetoes the trade", testVetoAtThreshold)
	t.Run("Trade participants cannot vote", testParticipantVoteBarred)
	t.Run("A team votes at most once", testDoubleVoteRejected)
	t.Run("Voting on a settled trade is a conflict", testVoteOnSettledTrade)
	t.Run("Votes fall through to multi-team trades", testVoteOnMultiTeamTrade)
}

func TestCommissionerVetoTrade(t *testing.T) {
	t.Run("The commissioner vetoes a pending trade outright", testCommissionerVetoPendingTrade)
	t.Run("A league without commissioner veto rejects it", testCommissionerVetoDisabled)
	t.Run("A settled trade cannot be commissioner vetoed", testCommissionerVetoTerminalConflict)
	t.Run("Commissioner veto falls through to multi-team trades", testCommissionerVetoMultiTeam)
}

func testCommissionerVetoPendingTrade(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.settings.EXPECT().TradeSettings(gomock.Any(), "league-1").Times(1).Return(openSettings(), nil)
	eng.store.EXPECT().Update(gomock.Any(), p).Times(1).Return(nil)

	err := eng.CommissionerVetoTrade(context.Background(), "trade-1", "user-commish", "clear collusion")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusVetoed, p.Status)
	assert.Equal(t, "clear collusion", p.CommissionerNotes)
	require.NotNil(t, p.ProcessedAt)
	assert.Equal(t, eng.now, *p.ProcessedAt)
}

func testCommissionerVetoDisabled(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	settings := openSettings()
	settings.CommissionerVetoEnabled = false
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.settings.EXPECT().TradeSettings(gomock.Any(), "league-1").Times(1).Return(settings, nil)

	err := eng.CommissionerVetoTrade(context.Background(), "trade-1", "user-commish", "")
	assert.ErrorIs(t, err, trades.ErrCommissionerVetoDisabled)
	assert.Equal(t, types.TradeStatusPending, p.Status)
}

func testCommissionerVetoTerminalConflict(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	p.Status = types.TradeStatusCompleted
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)

	err := eng.CommissionerVetoTrade(context.Background(), "trade-1", "user-commish", "")
	assert.ErrorIs(t, err, trades.ErrTradeAlreadyProcessed)
}

func testCommissionerVetoMultiTeam(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	mt := pendingMultiTeamTrade()
	eng.store.EXPECT().Get(gomock.Any(), "mtt-1").Times(1).Return(nil, trades.ErrTradeNotFound)
	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(mt, nil)
	eng.settings.EXPECT().TradeSettings(gomock.Any(), "league-1").Times(1).Return(openSettings(), nil)
	eng.store.EXPECT().UpdateMultiTeam(gomock.Any(), mt).Times(1).Return(nil)

	err := eng.CommissionerVetoTrade(context.Background(), "mtt-1", "user-commish", "lopsided for team-z")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusVetoed, mt.Status)
	require.NotNil(t, mt.ProcessedAt)
}

func (e *testEngine) expectNoPriorVote(tradeID, teamID string) {
	e.votes.EXPECT().GetByTradeAndTeam(gomock.Any(), tradeID, teamID).Times(1).
		Return(nil, trades.ErrVoteNotFound)
}

func testApproveVoteRecorded(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.expectNoPriorVote("trade-1", "team-c")
	eng.votes.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	vote, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-1", "team-c", types.VoteTypeApprove, "")
	require.NoError(t, err)
	assert.Equal(t, types.VoteTypeApprove, vote.VoteType)
	assert.Equal(t, eng.now, vote.VotedAt)
	assert.Equal(t, types.TradeStatusPending, p.Status)
	assert.EqualValues(t, 0, p.VetoVotes)
}

func testVetoBelowThreshold(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade() // threshold 2
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.expectNoPriorVote("trade-1", "team-c")
	eng.votes.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.store.EXPECT().Update(gomock.Any(), p).Times(1).Return(nil)

	_, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-1", "team-c", types.VoteTypeVeto, "lopsided")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusPending, p.Status)
	assert.EqualValues(t, 1, p.VetoVotes)
	assert.Equal(t, []string{"team-c"}, p.VetoVoters)
}

func testVetoAtThreshold(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	p.VetoVotes = 1
	p.VetoVoters = []string{"team-c"}
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)
	eng.expectNoPriorVote("trade-1", "team-d")
	eng.votes.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.store.EXPECT().Update(gomock.Any(), p).Times(1).Return(nil)

	_, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-2", "team-d", types.VoteTypeVeto, "")
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusVetoed, p.Status)
	assert.EqualValues(t, 2, p.VetoVotes)
	require.NotNil(t, p.ProcessedAt)
}

func testParticipantVoteBarred(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)

	_, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-1", "team-a", types.VoteTypeVeto, "")
	assert.ErrorIs(t, err, trades.ErrParticipantCannotVote)
}

func testDoubleVoteRejected(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(pendingTrade(), nil)
	eng.votes.EXPECT().GetByTradeAndTeam(gomock.Any(), "trade-1", "team-c").Times(1).
		Return(&types.TradeVote{ID: "vote-1", TradeID: "trade-1", TeamID: "team-c"}, nil)

	_, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-1", "team-c", types.VoteTypeVeto, "")
	assert.ErrorIs(t, err, trades.ErrTeamAlreadyVoted)
}

func testVoteOnSettledTrade(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	p := pendingTrade()
	p.Status = types.TradeStatusCompleted
	eng.store.EXPECT().Get(gomock.Any(), "trade-1").Times(1).Return(p, nil)

	_, err := eng.VoteOnTrade(context.Background(), "trade-1", "user-1", "team-c", types.VoteTypeVeto, "")
	assert.ErrorIs(t, err, trades.ErrTradeAlreadyProcessed)
}

func testVoteOnMultiTeamTrade(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	mt := pendingMultiTeamTrade()
	mt.VetoThreshold = 1
	eng.store.EXPECT().Get(gomock.Any(), "mtt-1").Times(1).Return(nil, trades.ErrTradeNotFound)
	eng.store.EXPECT().GetMultiTeam(gomock.Any(), "mtt-1").Times(1).Return(mt, nil)
	eng.expectNoPriorVote("mtt-1", "team-z")
	eng.votes.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.store.EXPECT().UpdateMultiTeam(gomock.Any(), mt).Times(1).Return(nil)

	vote, err := eng.VoteOnTrade(context.Background(), "mtt-1", "user-1", "team-z", types.VoteTypeVeto, "collusion")
	require.NoError(t, err)
	assert.Equal(t, "mtt-1", vote.TradeID)
	assert.Equal(t, types.TradeStatusVetoed, mt.Status)
}
