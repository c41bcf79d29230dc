package timeconv

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timeconv",
			Name:      "conversions_total",
			Help:      "Conversions by result (success or failure).",
		},
		[]string{"result"},
	)

	conversionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timeconv",
			Name:      "conversion_failures_total",
			Help:      "Failed conversions by failure code.",
		},
		[]string{"code"},
	)

	batchItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "timeconv",
			Name:      "batch_items_total",
			Help:      "Inputs processed through BatchConvert.",
		},
	)

	batchChunkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "timeconv",
			Name:      "batch_chunk_duration_seconds",
			Help:      "Wall time each batch worker spent on its chunk.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"worker"},
	)

	liveTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "timeconv",
			Name:      "live_ticks_total",
			Help:      "Re-evaluations delivered by live sessions.",
		},
	)
)
