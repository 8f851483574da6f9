package handler

import (
	"net/http"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/service"
)

// PortfolioHandler serves the public portfolio pages.
type PortfolioHandler struct {
	content service.ContentService
}

func NewPortfolioHandler(content service.ContentService) *PortfolioHandler {
	return &PortfolioHandler{content: content}
}

// List handles GET /api/portfolio?featured=true.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.PortfolioFilter{FeaturedOnly: r.URL.Query().Get("featured") == "true"}

	items, err := h.content.ListPortfolio(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "portfolio list", "list_failed")
		return
	}
	if items == nil {
		items = []*model.PortfolioItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetBySlug handles GET /api/portfolio/{slug}.
func (h *PortfolioHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.content.GetPortfolioBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "portfolio get", "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
