package types

import "time"

// VoteType is the direction of a league-member ballot on a trade.
type VoteType string

const (
	VoteTypeApprove VoteType = "approve"
	VoteTypeVeto    VoteType = "veto"
)

func (v VoteType) String() string {
	return string(v)
}

// TradeVote is a single league-member ballot against a pending trade.
// A team casts at most one vote per trade, and never on its own trade.
type TradeVote struct {
	ID       string
	TradeID  string
	UserID   string
	TeamID   string
	VoteType VoteType
	Reason   string
	VotedAt  time.Time
}
