package handlers

import (
	"net/http"
)

// HealthHandler reports liveness and which offer source the server uses.
type HealthHandler struct {
	OfferSource    string
	HistoryEnabled bool
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":          "ok",
		"offer_source":    h.OfferSource,
		"history_enabled": h.HistoryEnabled,
	})
}
