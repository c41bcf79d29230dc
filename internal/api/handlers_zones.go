package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jyhwenchai/Tools-sub004/internal/api/respond"
	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

// ZoneHandler serves timezone lookups.
type ZoneHandler struct {
	engine *timeconv.Engine
}

// NewZoneHandler creates a timezone handler backed by engine.
func NewZoneHandler(engine *timeconv.Engine) *ZoneHandler {
	return &ZoneHandler{engine: engine}
}

// GetZone handles GET /api/timezones/{id}. The id may contain slashes
// (Asia/Tokyo), so the route captures the rest of the path.
func (h *ZoneHandler) GetZone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respond.WriteBadRequest(w, "timezone identifier required")
		return
	}
	info, err := h.engine.ZoneInfo(id)
	if err != nil {
		name := ""
		if code, ok := timeconv.FailureCodeOf(err); ok {
			name = code.String()
		}
		respond.WriteFailure(w, http.StatusNotFound, name, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, info)
}
