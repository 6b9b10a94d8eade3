package sqlstore

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/types"
)

// Votes persists league-member ballots. The unique (trade_id, team_id)
// constraint backs the one-ballot-per-team rule at the database level.
type Votes struct {
	*ConnectionSource
}

func NewVotes(connectionSource *ConnectionSource) *Votes {
	return &Votes{
		ConnectionSource: connectionSource,
	}
}

func (vs *Votes) Add(ctx context.Context, v types.TradeVote) error {
	defer metrics.StartSQLQuery("Votes", "Add")()
	_, err := vs.Connection.Exec(ctx, `
		INSERT INTO trade_votes (id, trade_id, user_id, team_id, vote_type, reason, voted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.TradeID, v.UserID, v.TeamID, v.VoteType.String(), v.Reason, v.VotedAt)
	return err
}

func (vs *Votes) GetByTradeAndTeam(ctx context.Context, tradeID, teamID string) (*types.TradeVote, error) {
	defer metrics.StartSQLQuery("Votes", "GetByTradeAndTeam")()

	var row voteRow
	err := pgxscan.Get(ctx, vs.Connection, &row, `
		SELECT id, trade_id, user_id, team_id, vote_type, reason, voted_at
		FROM trade_votes
		WHERE trade_id = $1 AND team_id = $2`,
		tradeID, teamID)
	if pgxscan.NotFound(err) {
		return nil, trades.ErrVoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toVote(), nil
}

// GetByTrade returns every ballot cast on a trade, earliest first.
func (vs *Votes) GetByTrade(ctx context.Context, tradeID string) ([]types.TradeVote, error) {
	defer metrics.StartSQLQuery("Votes", "GetByTrade")()

	var rows []voteRow
	err := pgxscan.Select(ctx, vs.Connection, &rows, `
		SELECT id, trade_id, user_id, team_id, vote_type, reason, voted_at
		FROM trade_votes
		WHERE trade_id = $1
		ORDER BY voted_at`,
		tradeID)
	if err != nil {
		return nil, err
	}
	out := make([]types.TradeVote, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toVote())
	}
	return out, nil
}

type voteRow struct {
	ID       string
	TradeID  string
	UserID   string
	TeamID   string
	VoteType string
	Reason   string
	VotedAt  time.Time
}

func (r *voteRow) toVote() *types.TradeVote {
	return &types.TradeVote{
		ID:       r.ID,
		TradeID:  r.TradeID,
		UserID:   r.UserID,
		TeamID:   r.TeamID,
		VoteType: types.VoteType(r.VoteType),
		Reason:   r.Reason,
		VotedAt:  r.VotedAt,
	}
}
