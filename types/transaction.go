package types

import "time"

// TradeKind distinguishes the two trade shapes in the audit trail.
type TradeKind string

const (
	TradeKindTwoParty  TradeKind = "two_party"
	TradeKindMultiTeam TradeKind = "multi_team"
)

// TransactionRecord is the audit entry written when a settlement commits.
type TransactionRecord struct {
	TradeID      string
	Kind         TradeKind
	LeagueID     string
	Participants []string
	Flows        []AssetFlow
	ExecutedAt   time.Time
}
