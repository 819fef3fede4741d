package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wallet_export"

var (
	IndexRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_requests_total",
			Help:      "Index service HTTP attempts by outcome",
		},
		[]string{"outcome"},
	)

	IndexRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_retries_total",
			Help:      "Index service requests retried after a transient failure",
		},
	)

	ChainCallsHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_calls",
			Help:      "Time taken by chain RPC calls",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "error"},
	)

	Snapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_total",
			Help:      "Wallet snapshots built by result",
		},
		[]string{"result"},
	)
)

// CollectChainCall records the latency of one RPC call.
func CollectChainCall(method string, err error, start time.Time) {
	ChainCallsHistogram.
		WithLabelValues(method, errLabelValue(err)).
		Observe(time.Since(start).Seconds())
}

// CollectIndexAttempt records one HTTP attempt against the index.
func CollectIndexAttempt(outcome string) {
	IndexRequests.WithLabelValues(outcome).Inc()
}

// CollectSnapshot records a finished snapshot build.
func CollectSnapshot(err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	Snapshots.WithLabelValues(result).Inc()
}

func errLabelValue(err error) string {
	if err != nil {
		return "true"
	}
	return "false"
}
