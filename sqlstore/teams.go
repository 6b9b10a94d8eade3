package sqlstore

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/astralfield/tradecore/metrics"
)

// Teams answers league membership queries.
type Teams struct {
	*ConnectionSource
}

func NewTeams(connectionSource *ConnectionSource) *Teams {
	return &Teams{
		ConnectionSource: connectionSource,
	}
}

func (ts *Teams) TeamsInLeague(ctx context.Context, leagueID string) ([]string, error) {
	defer metrics.StartSQLQuery("Teams", "TeamsInLeague")()

	var ids []string
	err := pgxscan.Select(ctx, ts.Connection, &ids,
		`SELECT id FROM teams WHERE league_id = $1 ORDER BY id`, leagueID)
	return ids, err
}

func (ts *Teams) Exists(ctx context.Context, leagueID, teamID string) (bool, error) {
	defer metrics.StartSQLQuery("Teams", "Exists")()

	var exists bool
	err := pgxscan.Get(ctx, ts.Connection, &exists,
		`SELECT EXISTS (SELECT 1 FROM teams WHERE league_id = $1 AND id = $2)`,
		leagueID, teamID)
	return exists, err
}
