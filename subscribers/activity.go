package subscribers

import (
	"context"

	"github.com/astralfield/tradecore/events"
	"github.com/astralfield/tradecore/logging"
	"github.com/astralfield/tradecore/types"
)

// TransactionHistory is the read side of the executed-trade ledger.
type TransactionHistory interface {
	GetByTrade(ctx context.Context, tradeID string) (*types.TransactionRecord, error)
}

// ActivityStream tails the event bus and writes the league activity log.
// Settlement events are enriched with the executed record so the log line
// carries the full asset movement.
type ActivityStream struct {
	*Base
	log     *logging.Logger
	history TransactionHistory
}

func NewActivityStream(ctx context.Context, log *logging.Logger, history TransactionHistory, ack bool) *ActivityStream {
	s := &ActivityStream{
		Base:    NewBase(ctx, 10, ack),
		log:     log.Named("activity"),
		history: history,
	}
	if s.isRunning() {
		go s.loop(s.ctx)
	}
	return s
}

func (s *ActivityStream) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.Halt()
			return
		case evts, ok := <-s.ch:
			if !ok {
				return
			}
			if s.isRunning() {
				s.Push(evts...)
			}
		}
	}
}

func (s *ActivityStream) Push(evts ...events.Event) {
	for _, e := range evts {
		switch te := e.(type) {
		case *events.TradeProposal:
			p := te.Proposal()
			s.log.Info("trade activity",
				logging.TradeID(p.ID),
				logging.LeagueID(p.LeagueID),
				logging.String("status", p.Status.String()),
			)
		case *events.TradeResponse:
			p := te.Proposal()
			s.log.Info("trade response",
				logging.TradeID(p.ID),
				logging.String("response", string(te.Response())),
			)
		case *events.TradeVote:
			v := te.Vote()
			s.log.Info("trade vote",
				logging.TradeID(v.TradeID),
				logging.TeamID(v.TeamID),
				logging.String("vote", v.VoteType.String()),
			)
		case *events.MultiTeamTrade:
			t := te.Trade()
			s.log.Info("multi-team trade activity",
				logging.TradeID(t.ID),
				logging.LeagueID(t.LeagueID),
				logging.String("status", t.Status.String()),
			)
		case *events.MultiTeamAcceptance:
			t := te.Trade()
			s.log.Info("multi-team trade acceptance",
				logging.TradeID(t.ID),
				logging.TeamID(te.TeamID()),
			)
		case *events.Settlement:
			s.settled(te)
		}
	}
}

func (s *ActivityStream) settled(e *events.Settlement) {
	rec, err := s.history.GetByTrade(context.Background(), e.TradeID())
	if err != nil {
		s.log.Warn("trade settled but no executed record found",
			logging.TradeID(e.TradeID()),
			logging.Error(err),
		)
		return
	}
	s.log.Info("trade settled",
		logging.TradeID(rec.TradeID),
		logging.LeagueID(rec.LeagueID),
		logging.String("kind", string(rec.Kind)),
		logging.Strings("participants", rec.Participants),
		logging.Int("assets-moved", len(rec.Flows)),
	)
}

func (s *ActivityStream) Types() []events.Type {
	return []events.Type{
		events.TradeProposalEvent,
		events.TradeResponseEvent,
		events.TradeVoteEvent,
		events.MultiTeamTradeEvent,
		events.MultiTeamAcceptanceEvent,
		events.SettlementEvent,
	}
}
