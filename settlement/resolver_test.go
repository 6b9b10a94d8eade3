package settlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/types"
)

func TestResolveTradeFlows(t *testing.T) {
	t.Run("Every asset class maps to a directed flow", func(t *testing.T) {
		p := &types.TradeProposal{
			ID:              "trade-1",
			ProposingTeamID: "team-a",
			ReceivingTeamID: "team-b",
			ProposedPlayers: []types.TradeItem{{PlayerID: "p1"}},
			RequestedPlayers: []types.TradeItem{
				{PlayerID: "p2"}, {PlayerID: "p3"},
			},
			ProposedDraftPicks: []types.DraftPickItem{{Year: 2027, Round: 1, OriginalTeamID: "team-a"}},
			FAABAmount:         25,
		}

		flows := settlement.ResolveTradeFlows(p)
		require.Len(t, flows, 5)
		assert.Equal(t, types.AssetFlow{
			Kind: types.AssetKindPlayer, FromTeamID: "team-a", ToTeamID: "team-b", PlayerID: "p1",
		}, flows[0])
		assert.Equal(t, types.AssetFlow{
			Kind: types.AssetKindPlayer, FromTeamID: "team-b", ToTeamID: "team-a", PlayerID: "p2",
		}, flows[1])
		assert.Equal(t, types.AssetKindPick, flows[3].Kind)
		assert.Equal(t, "team-b", flows[3].ToTeamID)
		assert.Equal(t, types.AssetFlow{
			Kind: types.AssetKindFAAB, FromTeamID: "team-a", ToTeamID: "team-b", FAABAmount: 25,
		}, flows[4])
	})

	t.Run("No FAAB flow without an amount", func(t *testing.T) {
		p := &types.TradeProposal{
			ProposingTeamID: "team-a",
			ReceivingTeamID: "team-b",
			ProposedPlayers: []types.TradeItem{{PlayerID: "p1"}},
		}
		flows := settlement.ResolveTradeFlows(p)
		require.Len(t, flows, 1)
		assert.Equal(t, types.AssetKindPlayer, flows[0].Kind)
	})
}

func TestResolveMultiTeamFlows(t *testing.T) {
	t.Run("Players route to their unique declared receiver", testResolveCircularPlayers)
	t.Run("An asset nobody receives fails resolution", testResolveNoReceiver)
	t.Run("A declared receive nobody gives fails resolution", testResolvePhantomReceive)
	t.Run("An asset declared by two receivers fails resolution", testResolveDuplicateReceiver)
	t.Run("FAAB is allocated greedily across receivers", testResolveFAABSplit)
	t.Run("FAAB never routes back to its giver", testResolveFAABSelfRoute)
	t.Run("Mismatched FAAB totals fail resolution", testResolveFAABMismatch)
}

func testResolveCircularPlayers(t *testing.T) {
	p1 := types.TradeItem{PlayerID: "p1"}
	p2 := types.TradeItem{PlayerID: "p2"}
	p3 := types.TradeItem{PlayerID: "p3"}
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{p1}, ReceivingPlayers: []types.TradeItem{p3}},
			{TeamID: "team-y", GivingPlayers: []types.TradeItem{p2}, ReceivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-z", GivingPlayers: []types.TradeItem{p3}, ReceivingPlayers: []types.TradeItem{p2}},
		},
	}

	flows, err := settlement.ResolveMultiTeamFlows(trade)
	require.NoError(t, err)
	require.Len(t, flows, 3)
	assert.Equal(t, types.AssetFlow{
		Kind: types.AssetKindPlayer, FromTeamID: "team-x", ToTeamID: "team-y", PlayerID: "p1",
	}, flows[0])
	assert.Equal(t, types.AssetFlow{
		Kind: types.AssetKindPlayer, FromTeamID: "team-y", ToTeamID: "team-z", PlayerID: "p2",
	}, flows[1])
	assert.Equal(t, types.AssetFlow{
		Kind: types.AssetKindPlayer, FromTeamID: "team-z", ToTeamID: "team-x", PlayerID: "p3",
	}, flows[2])
}

func testResolveNoReceiver(t *testing.T) {
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{{PlayerID: "p1"}}},
			{TeamID: "team-y"},
			{TeamID: "team-z"},
		},
	}
	_, err := settlement.ResolveMultiTeamFlows(trade)
	assert.ErrorIs(t, err, settlement.ErrNoReceiverForAsset)
}

func testResolvePhantomReceive(t *testing.T) {
	p1 := types.TradeItem{PlayerID: "p1"}
	p2 := types.TradeItem{PlayerID: "p2"}
	p3 := types.TradeItem{PlayerID: "p3"}
	// team-z gives p3 but the only player it claims to receive is given by
	// nobody, so it would end up with an outbound flow and nothing inbound
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{p1}, ReceivingPlayers: []types.TradeItem{p2, p3}},
			{TeamID: "team-y", GivingPlayers: []types.TradeItem{p2}, ReceivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-z", GivingPlayers: []types.TradeItem{p3}, ReceivingPlayers: []types.TradeItem{{PlayerID: "p9"}}},
		},
	}
	_, err := settlement.ResolveMultiTeamFlows(trade)
	assert.ErrorIs(t, err, settlement.ErrNoGiverForAsset)
}

func testResolveDuplicateReceiver(t *testing.T) {
	p1 := types.TradeItem{PlayerID: "p1"}
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", GivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-y", ReceivingPlayers: []types.TradeItem{p1}},
			{TeamID: "team-z", ReceivingPlayers: []types.TradeItem{p1}},
		},
	}
	_, err := settlement.ResolveMultiTeamFlows(trade)
	assert.ErrorIs(t, err, settlement.ErrMultipleReceiversForAsset)
}

func testResolveFAABSplit(t *testing.T) {
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", FAABGiving: 30},
			{TeamID: "team-y", FAABReceiving: 20},
			{TeamID: "team-z", FAABReceiving: 10},
		},
	}
	flows, err := settlement.ResolveMultiTeamFlows(trade)
	require.NoError(t, err)
	require.Len(t, flows, 2)
	assert.Equal(t, types.AssetFlow{
		Kind: types.AssetKindFAAB, FromTeamID: "team-x", ToTeamID: "team-y", FAABAmount: 20,
	}, flows[0])
	assert.Equal(t, types.AssetFlow{
		Kind: types.AssetKindFAAB, FromTeamID: "team-x", ToTeamID: "team-z", FAABAmount: 10,
	}, flows[1])
}

func testResolveFAABSelfRoute(t *testing.T) {
	// the only open FAAB credit belongs to the giver itself
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", FAABGiving: 10, FAABReceiving: 10},
			{TeamID: "team-y"},
			{TeamID: "team-z"},
		},
	}
	_, err := settlement.ResolveMultiTeamFlows(trade)
	assert.ErrorIs(t, err, settlement.ErrNoReceiverForAsset)
}

func testResolveFAABMismatch(t *testing.T) {
	trade := &types.MultiTeamTrade{
		Teams: []types.MultiTeamTradeTeam{
			{TeamID: "team-x", FAABGiving: 30},
			{TeamID: "team-y", FAABReceiving: 20},
		},
	}
	_, err := settlement.ResolveMultiTeamFlows(trade)
	assert.ErrorIs(t, err, settlement.ErrFAABTotalsMismatch)
}
