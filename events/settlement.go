package events

import (
	"context"

	"github.com/astralfield/tradecore/types"
)

// Settlement is emitted once a trade's asset transfers have been applied and
// committed, carrying the resolved flows for audit subscribers.
type Settlement struct {
	*Base
	tradeID string
	flows   []types.AssetFlow
}

func NewSettlementEvent(ctx context.Context, tradeID string, flows []types.AssetFlow) *Settlement {
	return &Settlement{
		Base:    newBase(ctx, SettlementEvent),
		tradeID: tradeID,
		flows:   flows,
	}
}

func (s *Settlement) TradeID() string {
	return s.tradeID
}

func (s *Settlement) Flows() []types.AssetFlow {
	return s.flows
}
