package sqlstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/types"
)

// Trades is the database of record for both trade shapes. Asset lists,
// ballots and analysis reports live in jsonb columns; the columns queried by
// the engine (status, expiry, league) are relational.
type Trades struct {
	*ConnectionSource
}

func NewTrades(connectionSource *ConnectionSource) *Trades {
	return &Trades{
		ConnectionSource: connectionSource,
	}
}

type tradeRow struct {
	ID                  string
	LeagueID            string
	ProposingTeamID     string
	ReceivingTeamID     string
	ProposedPlayers     []byte
	RequestedPlayers    []byte
	ProposedDraftPicks  []byte
	RequestedDraftPicks []byte
	FaabAmount          int64
	Message             string
	CommissionerNotes   string
	Status              string
	CreatedAt           time.Time
	ExpirationDate      *time.Time
	ProcessedAt         *time.Time
	CounterOfferID      string
	VetoVotes           int64
	VetoVoters          []byte
	VetoThreshold       int64
	Analysis            []byte
}

const tradeColumns = `id, league_id, proposing_team_id, receiving_team_id,
	proposed_players, requested_players, proposed_draft_picks, requested_draft_picks,
	faab_amount, message, commissioner_notes, status, created_at, expiration_date,
	processed_at, counter_offer_id, veto_votes, veto_voters, veto_threshold, analysis`

func (ts *Trades) Add(ctx context.Context, p *types.TradeProposal) error {
	defer metrics.StartSQLQuery("Trades", "Add")()

	row, err := tradeToRow(p)
	if err != nil {
		return err
	}
	_, err = ts.Connection.Exec(ctx, `
		INSERT INTO trades (`+tradeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		row.ID, row.LeagueID, row.ProposingTeamID, row.ReceivingTeamID,
		row.ProposedPlayers, row.RequestedPlayers, row.ProposedDraftPicks, row.RequestedDraftPicks,
		row.FaabAmount, row.Message, row.CommissionerNotes, row.Status, row.CreatedAt, row.ExpirationDate,
		row.ProcessedAt, row.CounterOfferID, row.VetoVotes, row.VetoVoters, row.VetoThreshold, row.Analysis)
	return err
}

func (ts *Trades) Get(ctx context.Context, id string) (*types.TradeProposal, error) {
	defer metrics.StartSQLQuery("Trades", "Get")()

	var row tradeRow
	err := pgxscan.Get(ctx, ts.Connection, &row,
		`SELECT `+tradeColumns+` FROM trades WHERE id = $1`, id)
	if pgxscan.NotFound(err) {
		return nil, trades.ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToTrade(&row)
}

func (ts *Trades) Update(ctx context.Context, p *types.TradeProposal) error {
	defer metrics.StartSQLQuery("Trades", "Update")()

	row, err := tradeToRow(p)
	if err != nil {
		return err
	}
	tag, err := ts.Connection.Exec(ctx, `
		UPDATE trades
		SET status = $2,
		    commissioner_notes = $3,
		    processed_at = $4,
		    counter_offer_id = $5,
		    veto_votes = $6,
		    veto_voters = $7,
		    analysis = $8
		WHERE id = $1`,
		row.ID, row.Status, row.CommissionerNotes, row.ProcessedAt,
		row.CounterOfferID, row.VetoVotes, row.VetoVoters, row.Analysis)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return trades.ErrTradeNotFound
	}
	return nil
}

func (ts *Trades) ListExpired(ctx context.Context, asOf time.Time) ([]*types.TradeProposal, error) {
	defer metrics.StartSQLQuery("Trades", "ListExpired")()

	var rows []tradeRow
	err := pgxscan.Select(ctx, ts.Connection, &rows, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status = $1 AND expiration_date IS NOT NULL AND expiration_date <= $2
		ORDER BY expiration_date`,
		types.TradeStatusPending.String(), asOf)
	if err != nil {
		return nil, err
	}
	out := make([]*types.TradeProposal, 0, len(rows))
	for i := range rows {
		p, err := rowToTrade(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func tradeToRow(p *types.TradeProposal) (*tradeRow, error) {
	row := tradeRow{
		ID:                p.ID,
		LeagueID:          p.LeagueID,
		ProposingTeamID:   p.ProposingTeamID,
		ReceivingTeamID:   p.ReceivingTeamID,
		FaabAmount:        int64(p.FAABAmount),
		Message:           p.Message,
		CommissionerNotes: p.CommissionerNotes,
		Status:            p.Status.String(),
		CreatedAt:         p.CreatedAt,
		ProcessedAt:       p.ProcessedAt,
		CounterOfferID:    p.CounterOfferID,
		VetoVotes:         int64(p.VetoVotes),
		VetoThreshold:     int64(p.VetoThreshold),
	}
	if !p.ExpirationDate.IsZero() {
		ed := p.ExpirationDate
		row.ExpirationDate = &ed
	}
	var err error
	if row.ProposedPlayers, err = json.Marshal(p.ProposedPlayers); err != nil {
		return nil, errors.Wrap(err, "serialising proposed players")
	}
	if row.RequestedPlayers, err = json.Marshal(p.RequestedPlayers); err != nil {
		return nil, errors.Wrap(err, "serialising requested players")
	}
	if row.ProposedDraftPicks, err = json.Marshal(p.ProposedDraftPicks); err != nil {
		return nil, errors.Wrap(err, "serialising proposed picks")
	}
	if row.RequestedDraftPicks, err = json.Marshal(p.RequestedDraftPicks); err != nil {
		return nil, errors.Wrap(err, "serialising requested picks")
	}
	if row.VetoVoters, err = json.Marshal(p.VetoVoters); err != nil {
		return nil, errors.Wrap(err, "serialising veto voters")
	}
	if p.Analysis != nil {
		if row.Analysis, err = json.Marshal(p.Analysis); err != nil {
			return nil, errors.Wrap(err, "serialising analysis")
		}
	}
	return &row, nil
}

func rowToTrade(row *tradeRow) (*types.TradeProposal, error) {
	p := types.TradeProposal{
		ID:                row.ID,
		LeagueID:          row.LeagueID,
		ProposingTeamID:   row.ProposingTeamID,
		ReceivingTeamID:   row.ReceivingTeamID,
		FAABAmount:        uint64(row.FaabAmount),
		Message:           row.Message,
		CommissionerNotes: row.CommissionerNotes,
		Status:            types.TradeStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		ProcessedAt:       row.ProcessedAt,
		CounterOfferID:    row.CounterOfferID,
		VetoVotes:         uint64(row.VetoVotes),
		VetoThreshold:     uint64(row.VetoThreshold),
	}
	if row.ExpirationDate != nil {
		p.ExpirationDate = *row.ExpirationDate
	}
	if err := json.Unmarshal(row.ProposedPlayers, &p.ProposedPlayers); err != nil {
		return nil, errors.Wrap(err, "parsing proposed players")
	}
	if err := json.Unmarshal(row.RequestedPlayers, &p.RequestedPlayers); err != nil {
		return nil, errors.Wrap(err, "parsing requested players")
	}
	if err := json.Unmarshal(row.ProposedDraftPicks, &p.ProposedDraftPicks); err != nil {
		return nil, errors.Wrap(err, "parsing proposed picks")
	}
	if err := json.Unmarshal(row.RequestedDraftPicks, &p.RequestedDraftPicks); err != nil {
		return nil, errors.Wrap(err, "parsing requested picks")
	}
	if err := json.Unmarshal(row.VetoVoters, &p.VetoVoters); err != nil {
		return nil, errors.Wrap(err, "parsing veto voters")
	}
	if len(row.Analysis) > 0 {
		p.Analysis = &types.TradeAnalysis{}
		if err := json.Unmarshal(row.Analysis, p.Analysis); err != nil {
			return nil, errors.Wrap(err, "parsing analysis")
		}
	}
	return &p, nil
}

type multiTeamTradeRow struct {
	ID               string
	LeagueID         string
	InitiatingTeamID string
	Teams            []byte
	Status           string
	CreatedAt        time.Time
	ExpirationDate   *time.Time
	ProcessedAt      *time.Time
	AcceptedTeams    []byte
	VetoVotes        int64
	VetoVoters       []byte
	VetoThreshold    int64
	Analysis         []byte
	Flows            []byte
}

const multiTeamColumns = `id, league_id, initiating_team_id, teams, status,
	created_at, expiration_date, processed_at, accepted_teams, veto_votes,
	veto_voters, veto_threshold, analysis, flows`

func (ts *Trades) AddMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error {
	defer metrics.StartSQLQuery("Trades", "AddMultiTeam")()

	row, err := multiTeamToRow(t)
	if err != nil {
		return err
	}
	_, err = ts.Connection.Exec(ctx, `
		INSERT INTO multi_team_trades (`+multiTeamColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		row.ID, row.LeagueID, row.InitiatingTeamID, row.Teams, row.Status,
		row.CreatedAt, row.ExpirationDate, row.ProcessedAt, row.AcceptedTeams, row.VetoVotes,
		row.VetoVoters, row.VetoThreshold, row.Analysis, row.Flows)
	return err
}

func (ts *Trades) GetMultiTeam(ctx context.Context, id string) (*types.MultiTeamTrade, error) {
	defer metrics.StartSQLQuery("Trades", "GetMultiTeam")()

	var row multiTeamTradeRow
	err := pgxscan.Get(ctx, ts.Connection, &row,
		`SELECT `+multiTeamColumns+` FROM multi_team_trades WHERE id = $1`, id)
	if pgxscan.NotFound(err) {
		return nil, trades.ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToMultiTeam(&row)
}

func (ts *Trades) UpdateMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error {
	defer metrics.StartSQLQuery("Trades", "UpdateMultiTeam")()

	row, err := multiTeamToRow(t)
	if err != nil {
		return err
	}
	tag, err := ts.Connection.Exec(ctx, `
		UPDATE multi_team_trades
		SET teams = $2,
		    status = $3,
		    processed_at = $4,
		    accepted_teams = $5,
		    veto_votes = $6,
		    veto_voters = $7,
		    analysis = $8
		WHERE id = $1`,
		row.ID, row.Teams, row.Status, row.ProcessedAt,
		row.AcceptedTeams, row.VetoVotes, row.VetoVoters, row.Analysis)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return trades.ErrTradeNotFound
	}
	return nil
}

func (ts *Trades) ListExpiredMultiTeam(ctx context.Context, asOf time.Time) ([]*types.MultiTeamTrade, error) {
	defer metrics.StartSQLQuery("Trades", "ListExpiredMultiTeam")()

	var rows []multiTeamTradeRow
	err := pgxscan.Select(ctx, ts.Connection, &rows, `
		SELECT `+multiTeamColumns+` FROM multi_team_trades
		WHERE status = $1 AND expiration_date IS NOT NULL AND expiration_date <= $2
		ORDER BY expiration_date`,
		types.TradeStatusPending.String(), asOf)
	if err != nil {
		return nil, err
	}
	out := make([]*types.MultiTeamTrade, 0, len(rows))
	for i := range rows {
		t, err := rowToMultiTeam(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func multiTeamToRow(t *types.MultiTeamTrade) (*multiTeamTradeRow, error) {
	row := multiTeamTradeRow{
		ID:               t.ID,
		LeagueID:         t.LeagueID,
		InitiatingTeamID: t.InitiatingTeamID,
		Status:           t.Status.String(),
		CreatedAt:        t.CreatedAt,
		ProcessedAt:      t.ProcessedAt,
		VetoVotes:        int64(t.VetoVotes),
		VetoThreshold:    int64(t.VetoThreshold),
	}
	if !t.ExpirationDate.IsZero() {
		ed := t.ExpirationDate
		row.ExpirationDate = &ed
	}
	var err error
	if row.Teams, err = json.Marshal(t.Teams); err != nil {
		return nil, errors.Wrap(err, "serialising teams")
	}
	if row.AcceptedTeams, err = json.Marshal(t.AcceptedTeams); err != nil {
		return nil, errors.Wrap(err, "serialising accepted teams")
	}
	if row.VetoVoters, err = json.Marshal(t.VetoVoters); err != nil {
		return nil, errors.Wrap(err, "serialising veto voters")
	}
	if row.Flows, err = json.Marshal(t.Flows); err != nil {
		return nil, errors.Wrap(err, "serialising flows")
	}
	if t.Analysis != nil {
		if row.Analysis, err = json.Marshal(t.Analysis); err != nil {
			return nil, errors.Wrap(err, "serialising analysis")
		}
	}
	return &row, nil
}

func rowToMultiTeam(row *multiTeamTradeRow) (*types.MultiTeamTrade, error) {
	t := types.MultiTeamTrade{
		ID:               row.ID,
		LeagueID:         row.LeagueID,
		InitiatingTeamID: row.InitiatingTeamID,
		Status:           types.TradeStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		ProcessedAt:      row.ProcessedAt,
		VetoVotes:        uint64(row.VetoVotes),
		VetoThreshold:    uint64(row.VetoThreshold),
	}
	if row.ExpirationDate != nil {
		t.ExpirationDate = *row.ExpirationDate
	}
	if err := json.Unmarshal(row.Teams, &t.Teams); err != nil {
		return nil, errors.Wrap(err, "parsing teams")
	}
	if err := json.Unmarshal(row.AcceptedTeams, &t.AcceptedTeams); err != nil {
		return nil, errors.Wrap(err, "parsing accepted teams")
	}
	if err := json.Unmarshal(row.VetoVoters, &t.VetoVoters); err != nil {
		return nil, errors.Wrap(err, "parsing veto voters")
	}
	if err := json.Unmarshal(row.Flows, &t.Flows); err != nil {
		return nil, errors.Wrap(err, "parsing flows")
	}
	if len(row.Analysis) > 0 {
		t.Analysis = &types.MultiTeamTradeAnalysis{}
		if err := json.Unmarshal(row.Analysis, t.Analysis); err != nil {
			return nil, errors.Wrap(err, "parsing analysis")
		}
	}
	return &t, nil
}
