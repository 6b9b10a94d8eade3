package events

import (
	"context"

	"github.com/astralfield/tradecore/types"
)

// TradeProposal is emitted whenever a two-party proposal changes state,
// including creation.
type TradeProposal struct {
	*Base
	p types.TradeProposal
}

func NewTradeProposalEvent(ctx context.Context, p types.TradeProposal) *TradeProposal {
	return &TradeProposal{
		Base: newBase(ctx, TradeProposalEvent),
		p:    p,
	}
}

func (t *TradeProposal) Proposal() types.TradeProposal {
	return t.p
}

// TradeResponse is emitted when the receiving team answers a proposal.
type TradeResponse struct {
	*Base
	p        types.TradeProposal
	response types.TradeResponseType
}

func NewTradeResponseEvent(ctx context.Context, p types.TradeProposal, r types.TradeResponseType) *TradeResponse {
	return &TradeResponse{
		Base:     newBase(ctx, TradeResponseEvent),
		p:        p,
		response: r,
	}
}

func (t *TradeResponse) Proposal() types.TradeProposal {
	return t.p
}

func (t *TradeResponse) Response() types.TradeResponseType {
	return t.response
}

// TradeVote is emitted for every accepted ballot.
type TradeVote struct {
	*Base
	v types.TradeVote
}

func NewTradeVoteEvent(ctx context.Context, v types.TradeVote) *TradeVote {
	return &TradeVote{
		Base: newBase(ctx, TradeVoteEvent),
		v:    v,
	}
}

func (t *TradeVote) Vote() types.TradeVote {
	return t.v
}
