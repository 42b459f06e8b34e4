package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "algobench_runs_total",
			Help: "The total number of benchmark runs executed",
		},
		[]string{"workload"},
	)
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "algobench_run_duration_seconds",
			Help: "The wall-clock duration of benchmark runs in seconds",
		},
		[]string{"workload"},
	)
	iterationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "algobench_iteration_duration_seconds",
			Help:    "The per-iteration duration of benchmark runs in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 10),
		},
		[]string{"workload"},
	)
)

func observeRun(r Record) {
	runsTotal.WithLabelValues(r.Name).Inc()
	runDuration.WithLabelValues(r.Name).Observe(r.Total.Seconds())
	iterationDuration.WithLabelValues(r.Name).Observe(r.PerIteration.Seconds())
}
