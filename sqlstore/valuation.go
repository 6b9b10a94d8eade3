package sqlstore

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/libs/num"
	"github.com/astralfield/tradecore/metrics"
	"github.com/astralfield/tradecore/types"
)

// Valuation serves asset values out of the most recent roster sync. Draft
// picks are priced off a round baseline with a discount per future year,
// overridden by the pick's own estimate when one is attached.
type Valuation struct {
	*ConnectionSource
}

func NewValuation(connectionSource *ConnectionSource) *Valuation {
	return &Valuation{
		ConnectionSource: connectionSource,
	}
}

// Round baselines in trade value points, first round down. Later rounds are
// worth nothing on the open market.
var pickRoundValues = []int64{60, 35, 20, 10, 5}

// futureYearDiscount is applied once per year out from the current season.
var futureYearDiscount = num.DecimalFromFloat(0.75)

func (vs *Valuation) ValuePlayer(ctx context.Context, playerID string) (num.Decimal, error) {
	defer metrics.StartSQLQuery("Valuation", "ValuePlayer")()

	var value num.Decimal
	err := pgxscan.Get(ctx, vs.Connection, &value,
		`SELECT value FROM roster_players WHERE player_id = $1`, playerID)
	if pgxscan.NotFound(err) {
		return num.DecimalZero(), errors.Wrapf(ErrPlayerNotFound, "player %s", playerID)
	}
	return value, err
}

func (vs *Valuation) ValuePick(ctx context.Context, pick types.DraftPickItem) (num.Decimal, error) {
	if !pick.EstimatedValue.IsZero() {
		return pick.EstimatedValue, nil
	}
	if pick.Round < 1 || pick.Round > len(pickRoundValues) {
		return num.DecimalZero(), nil
	}
	value := num.DecimalFromInt64(pickRoundValues[pick.Round-1])
	for year := time.Now().Year(); year < pick.Year; year++ {
		value = value.Mul(futureYearDiscount)
	}
	return value, nil
}
