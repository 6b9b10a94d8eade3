package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tradecore"

var (
	// Total time spent in each engine function, in seconds.
	engineTime *prometheus.CounterVec
	// Count of trades by terminal status.
	tradeCounter *prometheus.CounterVec
	// Count of accepted ballots by vote type.
	voteCounter *prometheus.CounterVec
	// Call and time counters for each store query.
	sqlQueryCounter     *prometheus.CounterVec
	sqlQueryTimeCounter *prometheus.CounterVec
)

func setupMetrics() error {
	et := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "engine_seconds_total",
		Help:      "Total time spent per engine function",
	}, []string{"engine", "fn"})
	if err := prometheus.Register(et); err != nil {
		return err
	}
	engineTime = et

	tc := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trades_total",
		Help:      "Number of trades reaching each status",
	}, []string{"status"})
	if err := prometheus.Register(tc); err != nil {
		return err
	}
	tradeCounter = tc

	vc := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_votes_total",
		Help:      "Number of trade ballots accepted",
	}, []string{"type"})
	if err := prometheus.Register(vc); err != nil {
		return err
	}
	voteCounter = vc

	sqc := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sql_query_total",
		Help:      "Number of calls per store query",
	}, []string{"store", "query"})
	if err := prometheus.Register(sqc); err != nil {
		return err
	}
	sqlQueryCounter = sqc

	sqt := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sql_query_seconds_total",
		Help:      "Total time spent per store query",
	}, []string{"store", "query"})
	if err := prometheus.Register(sqt); err != nil {
		return err
	}
	sqlQueryTimeCounter = sqt
	return nil
}

// Start enables metrics (given config).
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

// StartEngineTime records the duration of an engine call:
//
//	defer metrics.StartEngineTime("trades", "ProposeTrade")()
func StartEngineTime(engine, fn string) func() {
	if engineTime == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		engineTime.WithLabelValues(engine, fn).Add(time.Since(start).Seconds())
	}
}

// StartSQLQuery counts and times a store query:
//
//	defer metrics.StartSQLQuery("Trades", "Add")()
func StartSQLQuery(store, query string) func() {
	if sqlQueryCounter == nil {
		return func() {}
	}
	sqlQueryCounter.WithLabelValues(store, query).Inc()
	start := time.Now()
	return func() {
		sqlQueryTimeCounter.WithLabelValues(store, query).Add(time.Since(start).Seconds())
	}
}

// TradeCounterInc counts a trade reaching the given status.
func TradeCounterInc(status string) {
	if tradeCounter == nil {
		return
	}
	tradeCounter.WithLabelValues(status).Inc()
}

// VoteCounterInc counts an accepted ballot.
func VoteCounterInc(voteType string) {
	if voteCounter == nil {
		return
	}
	voteCounter.WithLabelValues(voteType).Inc()
}
