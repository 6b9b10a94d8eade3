package settlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/settlement/mocks"
	"github.com/astralfield/tradecore/types"
)

type testSettlement struct {
	*settlement.Engine
	ctrl      *gomock.Controller
	ownership *mocks.MockOwnershipStore
	tx        *mocks.MockOwnershipTx
	broker    *mocks.MockBroker
	now       time.Time
}

func getTestSettlement(t *testing.T) *testSettlement {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := &testSettlement{
		ctrl:      ctrl,
		ownership: mocks.NewMockOwnershipStore(ctrl),
		tx:        mocks.NewMockOwnershipTx(ctrl),
		broker:    mocks.NewMockBroker(ctrl),
		now:       time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
	timeService := mocks.NewMockTimeService(ctrl)
	timeService.EXPECT().GetTimeNow().AnyTimes().Return(s.now)

	s.Engine = settlement.New(
		logging.NewTestLogger(),
		settlement.NewDefaultConfig(),
		s.ownership,
		timeService,
		s.broker,
	)
	return s
}

// expectTransaction routes WithTransaction through the mocked transaction.
func (s *testSettlement) expectTransaction() {
	s.ownership.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, fn func(tx settlement.OwnershipTx) error) error {
			return fn(s.tx)
		})
}

func settleProposal() *types.TradeProposal {
	return &types.TradeProposal{
		ID:               "trade-1",
		LeagueID:         "league-1",
		ProposingTeamID:  "team-a",
		ReceivingTeamID:  "team-b",
		ProposedPlayers:  []types.TradeItem{{PlayerID: "p1"}},
		RequestedPlayers: []types.TradeItem{{PlayerID: "p2"}},
		FAABAmount:       15,
	}
}

func TestSettleTrade(t *testing.T) {
	t.Run("All transfers and the record run in one transaction", testSettleTradeCommits)
	t.Run("A failed transfer rolls back the whole settlement", testSettleTradeRollsBack)
	t.Run("An empty trade is nothing to settle", testSettleNothing)
}

func testSettleTradeCommits(t *testing.T) {
	s := getTestSettlement(t)
	defer s.ctrl.Finish()

	s.expectTransaction()
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p1", "team-a", "team-b", "trade-1").Times(1).Return(nil)
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p2", "team-b", "team-a", "trade-1").Times(1).Return(nil)
	s.tx.EXPECT().TransferFAAB(gomock.Any(), "team-a", "team-b", uint64(15)).Times(1).Return(nil)
	s.tx.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, rec types.TransactionRecord) error {
			assert.Equal(t, "trade-1", rec.TradeID)
			assert.Equal(t, types.TradeKindTwoParty, rec.Kind)
			assert.ElementsMatch(t, []string{"team-a", "team-b"}, rec.Participants)
			assert.Equal(t, s.now, rec.ExecutedAt)
			return nil
		})
	s.broker.EXPECT().Send(gomock.Any()).Times(1)

	flows, err := s.SettleTrade(context.Background(), settleProposal())
	require.NoError(t, err)
	assert.Len(t, flows, 3)
}

func testSettleTradeRollsBack(t *testing.T) {
	s := getTestSettlement(t)
	defer s.ctrl.Finish()

	s.expectTransaction()
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p1", "team-a", "team-b", "trade-1").Times(1).Return(nil)
	// the second transfer hits a conflict, nothing after it may run
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p2", "team-b", "team-a", "trade-1").Times(1).
		Return(errors.New("player changed hands"))

	_, err := s.SettleTrade(context.Background(), settleProposal())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settlement failed")
}

func testSettleNothing(t *testing.T) {
	s := getTestSettlement(t)
	defer s.ctrl.Finish()

	_, err := s.SettleTrade(context.Background(), &types.TradeProposal{ID: "trade-1"})
	assert.ErrorIs(t, err, settlement.ErrNothingToSettle)
}

func TestSettleMultiTeamTrade(t *testing.T) {
	t.Run("Stored flows are applied as is", testSettleMultiTeamStoredFlows)
	t.Run("Missing flows are resolved on demand", testSettleMultiTeamResolvesFlows)
}

func testSettleMultiTeamStoredFlows(t *testing.T) {
	s := getTestSettlement(t)
	defer s.ctrl.Finish()

	pick := &types.DraftPickItem{Year: 2027, Round: 3, OriginalTeamID: "team-y"}
	trade := &types.MultiTeamTrade{
		ID:       "mtt-1",
		LeagueID: "league-1",
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x"}, {TeamID: "team-y"}, {TeamID: "team-z"},
		},
		Flows: []types.AssetFlow{
			{Kind: types.AssetKindPlayer, FromTeamID: "team-x", ToTeamID: "team-y", PlayerID: "p1"},
			{Kind: types.AssetKindPick, FromTeamID: "team-y", ToTeamID: "team-z", Pick: pick},
		},
	}

	s.expectTransaction()
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p1", "team-x", "team-y", "mtt-1").Times(1).Return(nil)
	s.tx.EXPECT().TransferDraftPick(gomock.Any(), *pick, "team-y", "team-z", "mtt-1").Times(1).Return(nil)
	s.tx.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	s.broker.EXPECT().Send(gomock.Any()).Times(1)

	flows, err := s.SettleMultiTeamTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Len(t, flows, 2)
}

func testSettleMultiTeamResolvesFlows(t *testing.T) {
	s := getTestSettlement(t)
	defer s.ctrl.Finish()

	p1 := types.TradeItem{PlayerID: "p1"}
	p2 := types.TradeItem{PlayerID: "p2"}
	p3 := types.TradeItem{PlayerID: "p3"}
	trade := &types.MultiTeamTrade{
		ID: "mtt-1",
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{p1}, ReceivingPlayers: []types.TradeItem{p3}},
			{TeamID: "team-y", GivingPlayers: []types.TradeItem{p2}, ReceivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-z", GivingPlayers: []types.TradeItem{p3}, ReceivingPlayers: []types.TradeItem{p2}},
		},
	}

	s.expectTransaction()
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p1", "team-x", "team-y", "mtt-1").Times(1).Return(nil)
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p2", "team-y", "team-z", "mtt-1").Times(1).Return(nil)
	s.tx.EXPECT().TransferPlayer(gomock.Any(), "p3", "team-z", "team-x", "mtt-1").Times(1).Return(nil)
	s.tx.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Times(1).Return(nil)
	s.broker.EXPECT().Send(gomock.Any()).Times(1)

	flows, err := s.SettleMultiTeamTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Len(t, flows, 3)
}
