package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	formatterCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "timeconv",
		Subsystem: "fmtcache",
		Name:      "hits_total",
		Help:      "Formatter lookups served from the cache.",
	})

	formatterCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "timeconv",
		Subsystem: "fmtcache",
		Name:      "misses_total",
		Help:      "Formatter lookups that compiled a new pattern.",
	})
)
