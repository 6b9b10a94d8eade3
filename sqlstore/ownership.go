package sqlstore

import (
	"context"
	"encoding/json"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/settlement"
	"github.com/astralfield/tradecore/types"
)

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPickNotFound     = errors.New("draft pick not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrTransferConflict = errors.New("asset is no longer held by the giving team")
)

// Ownership is the durable asset ledger: who holds each player, pick and
// FAAB balance. Reads back validation; WithTransaction backs settlement, so
// a failing transfer rolls the whole trade back.
type Ownership struct {
	*ConnectionSource
}

func NewOwnership(connectionSource *ConnectionSource) *Ownership {
	return &Ownership{
		ConnectionSource: connectionSource,
	}
}

func (os *Ownership) PlayerOwner(ctx context.Context, leagueID, playerID string) (string, error) {
	defer metrics.StartSQLQuery("Ownership", "PlayerOwner")()

	var teamID string
	err := pgxscan.Get(ctx, os.Connection, &teamID, `
		SELECT team_id FROM roster_players
		WHERE league_id = $1 AND player_id = $2`,
		leagueID, playerID)
	if pgxscan.NotFound(err) {
		return "", errors.Wrapf(ErrPlayerNotFound, "player %s", playerID)
	}
	return teamID, err
}

func (os *Ownership) PickOwner(ctx context.Context, leagueID string, pick types.DraftPickItem) (string, error) {
	defer metrics.StartSQLQuery("Ownership", "PickOwner")()

	var teamID string
	err := pgxscan.Get(ctx, os.Connection, &teamID, `
		SELECT owner_team_id FROM draft_picks
		WHERE league_id = $1 AND year = $2 AND round = $3 AND original_team_id = $4`,
		leagueID, pick.Year, pick.Round, pick.OriginalTeamID)
	if pgxscan.NotFound(err) {
		return "", errors.Wrapf(ErrPickNotFound, "%d round %d (originally %s)", pick.Year, pick.Round, pick.OriginalTeamID)
	}
	return teamID, err
}

func (os *Ownership) FAABBalance(ctx context.Context, teamID string) (uint64, error) {
	defer metrics.StartSQLQuery("Ownership", "FAABBalance")()

	var balance int64
	err := pgxscan.Get(ctx, os.Connection, &balance,
		`SELECT faab_balance FROM teams WHERE id = $1`, teamID)
	if pgxscan.NotFound(err) {
		return 0, errors.Wrapf(ErrTeamNotFound, "team %s", teamID)
	}
	return uint64(balance), err
}

// WithTransaction runs fn inside a single database transaction. Any error
// from fn aborts the transaction and nothing fn did is visible.
func (os *Ownership) WithTransaction(ctx context.Context, fn func(tx settlement.OwnershipTx) error) error {
	defer metrics.StartSQLQuery("Ownership", "WithTransaction")()

	dbtx, err := os.Connection.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer dbtx.Rollback(ctx)

	if err := fn(&ownershipTx{tx: dbtx}); err != nil {
		return err
	}
	return dbtx.Commit(ctx)
}

type ownershipTx struct {
	tx Connection
}

func (t *ownershipTx) TransferPlayer(ctx context.Context, playerID, fromTeamID, toTeamID, tradeID string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE roster_players
		SET team_id = $3, acquisition_type = 'trade', acquired_at = now(), last_trade_id = $4
		WHERE player_id = $1 AND team_id = $2`,
		playerID, fromTeamID, toTeamID, tradeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrTransferConflict, "player %s from team %s", playerID, fromTeamID)
	}
	return nil
}

func (t *ownershipTx) TransferDraftPick(ctx context.Context, pick types.DraftPickItem, fromTeamID, toTeamID, tradeID string) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE draft_picks SET owner_team_id = $5, last_trade_id = $6
		WHERE year = $1 AND round = $2 AND original_team_id = $3 AND owner_team_id = $4`,
		pick.Year, pick.Round, pick.OriginalTeamID, fromTeamID, toTeamID, tradeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrTransferConflict, "%d round %d pick from team %s", pick.Year, pick.Round, fromTeamID)
	}
	return nil
}

func (t *ownershipTx) TransferFAAB(ctx context.Context, fromTeamID, toTeamID string, amount uint64) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE teams SET faab_balance = faab_balance - $2
		WHERE id = $1 AND faab_balance >= $2`,
		fromTeamID, int64(amount))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrTransferConflict, "%d FAAB from team %s", amount, fromTeamID)
	}
	_, err = t.tx.Exec(ctx,
		`UPDATE teams SET faab_balance = faab_balance + $2 WHERE id = $1`,
		toTeamID, int64(amount))
	return err
}

func (t *ownershipTx) RecordTransaction(ctx context.Context, rec types.TransactionRecord) error {
	participants, err := json.Marshal(rec.Participants)
	if err != nil {
		return errors.Wrap(err, "serialising participants")
	}
	flows, err := json.Marshal(rec.Flows)
	if err != nil {
		return errors.Wrap(err, "serialising flows")
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO trade_transactions (trade_id, kind, league_id, participants, flows, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.TradeID, string(rec.Kind), rec.LeagueID, participants, flows, rec.ExecutedAt)
	return err
}
