package types

import "github.com/astralfield/tradecore/libs/num"

// RosterPlayer is one player on a team's roster as read from the roster
// service, carrying the attributes the analyzer and validator need.
type RosterPlayer struct {
	PlayerID        string
	Name            string
	Position        string
	Age             int
	InjuryStatus    string
	Value           num.Decimal
	ProjectedPoints num.Decimal
}

// HealthyStatus is the injury status of a player with no concerns.
const HealthyStatus = "healthy"
