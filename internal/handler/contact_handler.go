package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bronsonbrode/backend/internal/export"
	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/service"
)

const exportFilename = "contact-submissions.csv"

// ContactHandler handles contact form submission and the admin message views.
type ContactHandler struct {
	contactService service.ContactService
	loc            *time.Location
}

// NewContactHandler creates a ContactHandler with the given service.
// loc renders timestamps in CSV exports; nil means time.Local.
func NewContactHandler(contactService service.ContactService, loc *time.Location) *ContactHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ContactHandler{contactService: contactService, loc: loc}
}

// Submit handles POST /api/contact.
// Every field is validated; failures come back together as a field → message map.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form model.ContactForm
	if !decodeJSON(w, r, &form) {
		return
	}

	sub, err := h.contactService.Submit(r.Context(), form)
	if err != nil {
		writeServiceError(w, r, err, "contact submit", "submit_failed")
		return
	}

	slog.Info("contact submission stored", "id", sub.ID, "category", sub.Category)
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "submission": sub})
}

// List handles GET /api/contact (admin).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "contact list", "list_failed")
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// Delete handles DELETE /api/contact/{id} (admin).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.contactService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "contact delete", "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": deleted})
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// BulkDelete handles DELETE /api/contact with body {"ids": [...]} (admin).
// Ids that do not exist are skipped; deleted lists the ids actually removed.
func (h *ContactHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deleted, err := h.contactService.DeleteMany(r.Context(), req.IDs)
	if err != nil {
		writeServiceError(w, r, err, "contact bulk delete", "delete_failed")
		return
	}

	ids := make([]int64, 0, len(deleted))
	for _, d := range deleted {
		ids = append(ids, d.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": ids, "count": len(ids)})
}

// Export handles GET /api/contact/export (admin) as a CSV download.
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "contact export", "export_failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
	if err := export.WriteContacts(w, subs, h.loc); err != nil {
		// headers are already sent; all that is left is to log it
		slog.Error("contact export write failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}

// Categories handles GET /api/contact/categories.
func (h *ContactHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ContactCategories)
}
