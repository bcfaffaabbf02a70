package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DepositsCreated counts deposit addresses issued
	DepositsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sweep_deposits_created_total",
			Help: "Total number of deposit addresses created",
		},
	)

	// RouteRuns counts sweep runs by scope and result
	RouteRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_route_runs_total",
			Help: "Total number of route runs",
		},
		[]string{"scope", "result"},
	)

	// RouteItems counts per-deposit outcomes within route runs
	RouteItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_route_items_total",
			Help: "Total number of deposits processed by route runs",
		},
		[]string{"outcome"},
	)

	// RouteDuration tracks route run duration
	RouteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sweep_route_duration_seconds",
			Help:    "Route run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"scope"},
	)

	// TransactionsSent counts transactions submitted to the chain
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"kind", "status"},
	)
)
