package sqlstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// Transactions is the read side of the executed-trade ledger. Records are
// written by settlement inside the same transaction as the transfers.
type Transactions struct {
	*ConnectionSource
}

func NewTransactions(connectionSource *ConnectionSource) *Transactions {
	return &Transactions{
		ConnectionSource: connectionSource,
	}
}

type transactionRow struct {
	TradeID      string
	Kind         string
	LeagueID     string
	Participants []byte
	Flows        []byte
	ExecutedAt   time.Time
}

// GetByTrade returns the executed record for a single trade.
func (ts *Transactions) GetByTrade(ctx context.Context, tradeID string) (*types.TransactionRecord, error) {
	defer metrics.StartSQLQuery("Transactions", "GetByTrade")()

	var row transactionRow
	err := pgxscan.Get(ctx, ts.Connection, &row, `
		SELECT trade_id, kind, league_id, participants, flows, executed_at
		FROM trade_transactions
		WHERE trade_id = $1`,
		tradeID)
	if pgxscan.NotFound(err) {
		return nil, errors.Errorf("no executed record for trade %s", tradeID)
	}
	if err != nil {
		return nil, err
	}
	recs, err := rowsToRecords([]transactionRow{row})
	if err != nil {
		return nil, err
	}
	return &recs[0], nil
}

// GetByLeague returns a league's executed trades, most recent first.
func (ts *Transactions) GetByLeague(ctx context.Context, leagueID string) ([]types.TransactionRecord, error) {
	defer metrics.StartSQLQuery("Transactions", "GetByLeague")()

	var rows []transactionRow
	err := pgxscan.Select(ctx, ts.Connection, &rows, `
		SELECT trade_id, kind, league_id, participants, flows, executed_at
		FROM trade_transactions
		WHERE league_id = $1
		ORDER BY executed_at DESC`,
		leagueID)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

// GetByTeam returns the executed trades a team took part in, most recent
// first.
func (ts *Transactions) GetByTeam(ctx context.Context, teamID string) ([]types.TransactionRecord, error) {
	defer metrics.StartSQLQuery("Transactions", "GetByTeam")()

	var rows []transactionRow
	err := pgxscan.Select(ctx, ts.Connection, &rows, `
		SELECT trade_id, kind, league_id, participants, flows, executed_at
		FROM trade_transactions
		WHERE participants @> to_jsonb($1::text)
		ORDER BY executed_at DESC`,
		teamID)
	if err != nil {
		return nil, err
	}
	return rowsToRecords(rows)
}

func rowsToRecords(rows []transactionRow) ([]types.TransactionRecord, error) {
	out := make([]types.TransactionRecord, 0, len(rows))
	for _, r := range rows {
		rec := types.TransactionRecord{
			TradeID:    r.TradeID,
			Kind:       types.TradeKind(r.Kind),
			LeagueID:   r.LeagueID,
			ExecutedAt: r.ExecutedAt,
		}
		if err := json.Unmarshal(r.Participants, &rec.Participants); err != nil {
			return nil, errors.Wrap(err, "parsing participants")
		}
		if err := json.Unmarshal(r.Flows, &rec.Flows); err != nil {
			return nil, errors.Wrap(err, "parsing flows")
		}
		out = append(out, rec)
	}
	return out, nil
}
