package types

import (
	"time"

	"github.com/astralfield/tradecore/libs/num"
)

// TradeStatus is the lifecycle state of a trade, two-party or multi-team.
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCountered TradeStatus = "countered"
	TradeStatusExpired   TradeStatus = "expired"
	TradeStatusVetoed    TradeStatus = "vetoed"
	TradeStatusCompleted TradeStatus = "completed"
	// TradeStatusFailed marks a trade whose settlement attempt was rolled
	// back; it requires manual intervention and is terminal.
	TradeStatusFailed TradeStatus = "failed"
)

// IsTerminal reports whether no further transition is possible from s.
func (s TradeStatus) IsTerminal() bool {
	switch s {
	case TradeStatusCompleted, TradeStatusRejected, TradeStatusExpired,
		TradeStatusVetoed, TradeStatusFailed:
		return true
	}
	return false
}

func (s TradeStatus) String() string {
	return string(s)
}

// TradeItem is a player attached to a proposal. Value and projection are
// snapshots taken at proposal time, not live references.
type TradeItem struct {
	PlayerID        string
	PlayerName      string
	Position        string
	Team            string
	CurrentValue    num.Decimal
	ProjectedPoints num.Decimal
}

// DraftPickItem is a future draft selection. OriginalTeamID tracks the pick's
// lineage through prior trades.
type DraftPickItem struct {
	Year           int
	Round          int
	OriginalTeamID string
	EstimatedValue num.Decimal
	IsConditional  bool
	Conditions     string
}

// TradeProposal is a two-party trade.
type TradeProposal struct {
	ID                  string
	LeagueID            string
	ProposingTeamID     string
	ReceivingTeamID     string
	ProposedPlayers     []TradeItem
	RequestedPlayers    []TradeItem
	ProposedDraftPicks  []DraftPickItem
	RequestedDraftPicks []DraftPickItem
	// FAABAmount flows proposer to receiver when positive.
	FAABAmount        uint64
	Message           string
	CommissionerNotes string
	Status            TradeStatus
	CreatedAt         time.Time
	ExpirationDate    time.Time
	ProcessedAt       *time.Time
	CounterOfferID    string
	VetoVotes         uint64
	VetoVoters        []string
	VetoThreshold     uint64
	Analysis          *TradeAnalysis
}

// Participants returns the team ids party to the trade.
func (p *TradeProposal) Participants() []string {
	return []string{p.ProposingTeamID, p.ReceivingTeamID}
}

// IsParticipant reports whether teamID is a party to the trade.
func (p *TradeProposal) IsParticipant(teamID string) bool {
	return teamID == p.ProposingTeamID || teamID == p.ReceivingTeamID
}

// HasVetoed reports whether teamID already cast a veto against the trade.
func (p *TradeProposal) HasVetoed(teamID string) bool {
	for _, v := range p.VetoVoters {
		if v == teamID {
			return true
		}
	}
	return false
}

// TradeSubmission is the caller-supplied payload for a new two-party
// proposal. Engine-owned fields (id, status, votes, analysis) are absent.
type TradeSubmission struct {
	LeagueID            string
	ProposingTeamID     string
	ReceivingTeamID     string
	ProposedPlayers     []TradeItem
	RequestedPlayers    []TradeItem
	ProposedDraftPicks  []DraftPickItem
	RequestedDraftPicks []DraftPickItem
	FAABAmount          uint64
	Message             string
	ExpirationDate      time.Time
}

// TradeResponseType discriminates the response variants.
type TradeResponseType string

const (
	TradeResponseAccept  TradeResponseType = "accept"
	TradeResponseReject  TradeResponseType = "reject"
	TradeResponseCounter TradeResponseType = "counter"
)

// TradeResponse is the receiving team's answer to a pending proposal.
// Counter responses carry a full replacement submission.
type TradeResponse struct {
	Type    TradeResponseType
	Counter *TradeSubmission
}

func AcceptResponse() TradeResponse {
	return TradeResponse{Type: TradeResponseAccept}
}

func RejectResponse() TradeResponse {
	return TradeResponse{Type: TradeResponseReject}
}

func CounterResponse(sub *TradeSubmission) TradeResponse {
	return TradeResponse{Type: TradeResponseCounter, Counter: sub}
}
