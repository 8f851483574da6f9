package handler

import (
	"net/http"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/service"
)

// BlogHandler serves blog listings and posts.
type BlogHandler struct {
	content service.ContentService
}

func NewBlogHandler(content service.ContentService) *BlogHandler {
	return &BlogHandler{content: content}
}

// List handles GET /api/blog. published=all includes drafts.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	includeUnpublished := r.URL.Query().Get("published") == "all"

	posts, err := h.content.ListBlogPosts(r.Context(), includeUnpublished)
	if err != nil {
		writeServiceError(w, r, err, "blog list", "list_failed")
		return
	}
	if posts == nil {
		posts = []*model.BlogPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetBySlug handles GET /api/blog/{slug}. Drafts are returned too.
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.GetBlogPostBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "blog get", "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, post)
}
