package tzone

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	zoneCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "timeconv",
		Subsystem: "tzcache",
		Name:      "hits_total",
		Help:      "Timezone lookups served from the cache.",
	})

	zoneCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "timeconv",
		Subsystem: "tzcache",
		Name:      "misses_total",
		Help:      "Timezone lookups that consulted the host zone database.",
	})
)
