package types

import (
	"time"
)

// MultiTeamTradeTeam is one participant in a multi-team trade, with the
// assets it gives and receives.
type MultiTeamTradeTeam struct {
	TeamID              string
	TeamName            string
	GivingPlayers       []TradeItem
	ReceivingPlayers    []TradeItem
	GivingDraftPicks    []DraftPickItem
	ReceivingDraftPicks []DraftPickItem
	FAABGiving          uint64
	FAABReceiving       uint64
	HasAccepted         bool
	AcceptedAt          *time.Time
}

// MultiTeamTrade is a trade between three or more teams. The initiating team
// is auto-accepted at creation; the trade settles once every participant has
// accepted.
type MultiTeamTrade struct {
	ID               string
	LeagueID         string
	InitiatingTeamID string
	Teams            []MultiTeamTradeTeam
	Status           TradeStatus
	CreatedAt        time.Time
	ExpirationDate   time.Time
	ProcessedAt      *time.Time
	AcceptedTeams    []string
	VetoVotes        uint64
	VetoVoters       []string
	VetoThreshold    uint64
	Analysis         *MultiTeamTradeAnalysis
	// Flows is the resolved asset routing (asset -> giver -> ultimate
	// receiver), computed once at validation time and immutable after.
	Flows []AssetFlow
}

// Participants returns the team ids party to the trade.
func (t *MultiTeamTrade) Participants() []string {
	out := make([]string, 0, len(t.Teams))
	for _, tm := range t.Teams {
		out = append(out, tm.TeamID)
	}
	return out
}

// IsParticipant reports whether teamID is a party to the trade.
func (t *MultiTeamTrade) IsParticipant(teamID string) bool {
	for _, tm := range t.Teams {
		if tm.TeamID == teamID {
			return true
		}
	}
	return false
}

// Team returns the participant entry for teamID, nil if not a participant.
func (t *MultiTeamTrade) Team(teamID string) *MultiTeamTradeTeam {
	for i := range t.Teams {
		if t.Teams[i].TeamID == teamID {
			return &t.Teams[i]
		}
	}
	return nil
}

// HasAccepted reports whether teamID already accepted the trade.
func (t *MultiTeamTrade) HasAccepted(teamID string) bool {
	for _, id := range t.AcceptedTeams {
		if id == teamID {
			return true
		}
	}
	return false
}

// AllAccepted reports whether every participant has accepted.
func (t *MultiTeamTrade) AllAccepted() bool {
	return len(t.AcceptedTeams) == len(t.Teams)
}

// HasVetoed reports whether teamID already cast a veto against the trade.
func (t *MultiTeamTrade) HasVetoed(teamID string) bool {
	for _, v := range t.VetoVoters {
		if v == teamID {
			return true
		}
	}
	return false
}

// AssetCount is the total number of players, picks and FAAB lots moving.
func (t *MultiTeamTrade) AssetCount() int {
	n := 0
	for _, tm := range t.Teams {
		n += len(tm.GivingPlayers) + len(tm.GivingDraftPicks)
		if tm.FAABGiving > 0 {
			n++
		}
	}
	return n
}

// MultiTeamTradeSubmission is the caller-supplied payload for a new
// multi-team trade.
type MultiTeamTradeSubmission struct {
	LeagueID         string
	InitiatingTeamID string
	Teams            []MultiTeamTradeTeam
	ExpirationDate   time.Time
}

// AssetKind discriminates the asset moved by a flow.
type AssetKind string

const (
	AssetKindPlayer AssetKind = "player"
	AssetKindPick   AssetKind = "pick"
	AssetKindFAAB   AssetKind = "faab"
)

// AssetFlow is one edge of the resolved routing graph for a multi-team
// trade: a single asset moving from one participant to another.
type AssetFlow struct {
	Kind       AssetKind
	FromTeamID string
	ToTeamID   string
	PlayerID   string
	Pick       *DraftPickItem
	FAABAmount uint64
}

