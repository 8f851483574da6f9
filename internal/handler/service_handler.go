package handler

import (
	"net/http"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/service"
)

// ServiceHandler はサービス一覧・詳細と管理用 CRUD の HTTP ハンドラ
type ServiceHandler struct {
	content service.ContentService
}

// NewServiceHandler は ServiceHandler を生成する
func NewServiceHandler(content service.ContentService) *ServiceHandler {
	return &ServiceHandler{content: content}
}

// List handles GET /api/services?category=&featured=true.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ServiceFilter{
		Category:     q.Get("category"),
		FeaturedOnly: q.Get("featured") == "true",
	}

	services, err := h.content.ListServices(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "service list", "list_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// GetBySlug handles GET /api/services/{slug}.
func (h *ServiceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	svc, err := h.content.GetServiceBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "service get", "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// GetByID handles GET /api/services/id/{id} (admin).
func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	svc, err := h.content.GetServiceByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "service get by id", "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Create handles POST /api/services (admin).
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ServiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	svc, err := h.content.CreateService(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "service create", "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Update handles PUT /api/services/{id} (admin). The body replaces the whole row.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in model.ServiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	svc, err := h.content.UpdateService(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, "service update", "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/services/{id} (admin).
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.content.DeleteService(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "service delete", "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": deleted})
}
