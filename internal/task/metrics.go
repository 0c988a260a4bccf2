package task

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded by workerItems.
const (
	outcomeForwarded = "forwarded"
	outcomeDropped   = "dropped"
	outcomeRequeued  = "requeued"
)

var (
	workerTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskq_worker_ticks_total",
			Help: "Worker ticks by result",
		},
		[]string{"result"},
	)
	workerItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskq_worker_items_total",
			Help: "Popped queue items by outcome",
		},
		[]string{"outcome"},
	)
	workerForwardDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskq_worker_forward_duration_seconds",
			Help:    "Time spent publishing one task downstream",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func recordTick(result TickResult) {
	switch {
	case result.Err != nil:
		workerTicks.WithLabelValues("error").Inc()
	case result.Popped == 0:
		workerTicks.WithLabelValues("empty").Inc()
	default:
		workerTicks.WithLabelValues("processed").Inc()
	}
	workerItems.WithLabelValues(outcomeForwarded).Add(float64(result.Forwarded))
	workerItems.WithLabelValues(outcomeDropped).Add(float64(result.Dropped))
	workerItems.WithLabelValues(outcomeRequeued).Add(float64(result.Requeued))
}
