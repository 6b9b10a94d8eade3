package logging

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases so callers don't need to import zap directly.

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Strings(key string, vals []string) zap.Field {
	return zap.Strings(key, vals)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

func Float64(key string, val float64) zap.Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

func TradeID(id string) zap.Field {
	return zap.String("trade-id", id)
}

func TeamID(id string) zap.Field {
	return zap.String("team-id", id)
}

func LeagueID(id string) zap.Field {
	return zap.String("league-id", id)
}
