package handler

import (
	"net/http"

	"github.com/bronsonbrode/backend/internal/service"
)

// AdminHandler serves the admin dashboard summary.
type AdminHandler struct {
	stats service.StatsService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(stats service.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "admin stats", "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
