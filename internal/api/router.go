package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jyhwenchai/Tools-sub004/internal/api/recovery"
	"github.com/Jyhwenchai/Tools-sub004/timeconv"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
)

// NewRouter creates the HTTP router with all API routes. ring may be nil
// when history is disabled.
func NewRouter(engine *timeconv.Engine, ring *history.Ring) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.New("timeconvd"))

	convertHandler := NewConvertHandler(engine)
	zoneHandler := NewZoneHandler(engine)
	historyHandler := NewHistoryHandler(ring)
	healthHandler := NewHealthHandler()

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Conversion endpoints
	router.HandleFunc("/api/convert", convertHandler.Convert).Methods("POST")
	router.HandleFunc("/api/convert/batch", convertHandler.ConvertBatch).Methods("POST")

	// Timezone lookup; the {id} capture spans slashes for IANA names.
	router.HandleFunc("/api/timezones/{id:.+}", zoneHandler.GetZone).Methods("GET")

	// History scrollback
	router.HandleFunc("/api/history", historyHandler.ListRecent).Methods("GET")

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
