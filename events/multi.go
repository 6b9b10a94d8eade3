package events

import (
	"context"

	"github.com/astralfield/tradecore/types"
)

// MultiTeamTrade is emitted whenever a multi-team trade changes state,
// including creation.
type MultiTeamTrade struct {
	*Base
	t types.MultiTeamTrade
}

func NewMultiTeamTradeEvent(ctx context.Context, t types.MultiTeamTrade) *MultiTeamTrade {
	return &MultiTeamTrade{
		Base: newBase(ctx, MultiTeamTradeEvent),
		t:    t,
	}
}

func (m *MultiTeamTrade) Trade() types.MultiTeamTrade {
	return m.t
}

// MultiTeamAcceptance is emitted when one participant accepts a multi-team
// trade.
type MultiTeamAcceptance struct {
	*Base
	t      types.MultiTeamTrade
	teamID string
}

func NewMultiTeamAcceptanceEvent(ctx context.Context, t types.MultiTeamTrade, teamID string) *MultiTeamAcceptance {
	return &MultiTeamAcceptance{
		Base:   newBase(ctx, MultiTeamAcceptanceEvent),
		t:      t,
		teamID: teamID,
	}
}

func (m *MultiTeamAcceptance) Trade() types.MultiTeamTrade {
	return m.t
}

func (m *MultiTeamAcceptance) TeamID() string {
	return m.teamID
}
