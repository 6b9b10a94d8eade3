package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUnsupportedEvent = errors.New("unknown payload for event")

// Type discriminates event payloads on the bus.
type Type int

const (
	// All is used by subscribers that want every event, it has no payload
	// of its own.
	All Type = iota
	TimeUpdate
	TradeProposalEvent
	TradeResponseEvent
	TradeVoteEvent
	MultiTeamTradeEvent
	MultiTeamAcceptanceEvent
	SettlementEvent
)

var eventStrings = map[Type]string{
	All:                      "ALL",
	TimeUpdate:               "TimeUpdate",
	TradeProposalEvent:       "TradeProposal",
	TradeResponseEvent:       "TradeResponse",
	TradeVoteEvent:           "TradeVote",
	MultiTeamTradeEvent:      "MultiTeamTrade",
	MultiTeamAcceptanceEvent: "MultiTeamAcceptance",
	SettlementEvent:          "Settlement",
}

// String gets the string representation of the event type.
func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event is the common denominator all bus events share.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
}

// Base common event fields, embedded by every payload type.
type Base struct {
	ctx     context.Context
	traceID string
	et      Type
}

type traceIDKey struct{}

// WithTraceID attaches a trace id to the context for event correlation.
func WithTraceID(ctx context.Context, tID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, tID)
}

func traceIDFromContext(ctx context.Context) (context.Context, string) {
	if tID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return ctx, tID
	}
	tID := uuid.NewString()
	return WithTraceID(ctx, tID), tID
}

func newBase(ctx context.Context, t Type) *Base {
	ctx, tID := traceIDFromContext(ctx)
	return &Base{
		ctx:     ctx,
		traceID: tID,
		et:      t,
	}
}

func (b Base) TraceID() string {
	return b.traceID
}

func (b Base) Context() context.Context {
	return b.ctx
}

func (b Base) Type() Type {
	return b.et
}
