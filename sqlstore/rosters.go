package sqlstore

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/astralfield/tradecore/libs/num"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// Rosters serves current team rosters for validation and analysis.
type Rosters struct {
	*ConnectionSource
}

func NewRosters(connectionSource *ConnectionSource) *Rosters {
	return &Rosters{
		ConnectionSource: connectionSource,
	}
}

type rosterPlayerRow struct {
	PlayerID        string
	Name            string
	Position        string
	Age             int
	InjuryStatus    string
	Value           num.Decimal
	ProjectedPoints num.Decimal
}

func (rs *Rosters) GetRoster(ctx context.Context, teamID string) ([]types.RosterPlayer, error) {
	defer metrics.StartSQLQuery("Rosters", "GetRoster")()

	var rows []rosterPlayerRow
	err := pgxscan.Select(ctx, rs.Connection, &rows, `
		SELECT player_id, name, position, age, injury_status, value, projected_points
		FROM roster_players
		WHERE team_id = $1
		ORDER BY player_id`,
		teamID)
	if err != nil {
		return nil, err
	}
	out := make([]types.RosterPlayer, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.RosterPlayer{
			PlayerID:        r.PlayerID,
			Name:            r.Name,
			Position:        r.Position,
			Age:             r.Age,
			InjuryStatus:    r.InjuryStatus,
			Value:           r.Value,
			ProjectedPoints: r.ProjectedPoints,
		})
	}
	return out, nil
}
