package fnsmetadata

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zkfairdomains/fns-metadata/schema"
)

const (
	MetricNameSpace = "fns_metadata"
)

var (
	resolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "resolve_total",
			Help:      "metadata resolutions by outcome",
		},
		[]string{"network", "outcome"},
	)
	resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricNameSpace,
			Name:      "resolve_duration_seconds",
			Help:      "time spent resolving one token",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"network"},
	)
	indexLagBlocks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: MetricNameSpace,
			Name:      "index_lag_blocks",
			Help:      "chain head minus the last block the index has processed",
		},
		[]string{"network"},
	)
)

func init() {
	prometheus.MustRegister(
		resolveTotal,
		resolveDuration,
		indexLagBlocks,
	)
}

func outcome(res *Resolution, err error) string {
	if err != nil {
		return schema.KindOf(err).String()
	}
	if res.Record.Placeholder {
		return "placeholder"
	}
	return "resolved"
}

func metricResolve(network string, start time.Time, res *Resolution, err error) {
	resolveTotal.WithLabelValues(network, outcome(res, err)).Inc()
	resolveDuration.WithLabelValues(network).Observe(time.Since(start).Seconds())
}

func metricIndexLag(network string, head, indexed uint64) {
	lag := float64(0)
	if head > indexed {
		lag = float64(head - indexed)
	}
	indexLagBlocks.WithLabelValues(network).Set(lag)
}
