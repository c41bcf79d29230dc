package api

import (
	"net/http"
	"strconv"

	"github.com/Jyhwenchai/Tools-sub004/internal/api/respond"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
)

// HistoryHandler serves the recent-conversions scrollback.
type HistoryHandler struct {
	ring *history.Ring
}

// NewHistoryHandler creates a history handler reading from ring. A nil
// ring means history is disabled.
func NewHistoryHandler(ring *history.Ring) *HistoryHandler {
	return &HistoryHandler{ring: ring}
}

// ListRecent handles GET /api/history?limit=N, newest first.
func (h *HistoryHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	if h.ring == nil {
		respond.WriteNotFound(w, "history is disabled")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.WriteBadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	recs := h.ring.Recent(limit)
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"records": recs,
		"count":   len(recs),
	})
}
