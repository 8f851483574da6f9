package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
	"github.com/bronsonbrode/backend/internal/service"
)

func TestServiceHandler_List_PassesFilter(t *testing.T) {
	var captured model.ServiceFilter
	mock := &mockContentService{
		listServicesFunc: func(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
			captured = filter
			return []*model.Service{{ID: 1, Name: "Web", Slug: "web"}}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/services?category=business&featured=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := model.ServiceFilter{Category: "business", FeaturedOnly: true}
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
	var got []model.Service
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "web" {
		t.Errorf("unexpected services: %+v", got)
	}
}

func TestServiceHandler_List_FeaturedOnlyForLiteralTrue(t *testing.T) {
	var captured model.ServiceFilter
	mock := &mockContentService{
		listServicesFunc: func(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
			captured = filter
			return nil, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/services?featured=1", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if captured.FeaturedOnly {
		t.Error("featured=1 must not enable the featured filter")
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestServiceHandler_GetBySlug(t *testing.T) {
	mock := &mockContentService{
		getServiceBySlugFunc: func(ctx context.Context, slug string) (*model.Service, error) {
			if slug == "web" {
				return &model.Service{ID: 1, Slug: "web"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	h := NewServiceHandler(mock)

	tests := []struct {
		slug string
		want int
	}{
		{"web", http.StatusOK},
		{"missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/services/"+tt.slug, nil)
		req.SetPathValue("slug", tt.slug)
		rec := httptest.NewRecorder()
		h.GetBySlug(rec, req)

		if rec.Code != tt.want {
			t.Errorf("slug %q: expected %d, got %d", tt.slug, tt.want, rec.Code)
		}
	}
}

func TestServiceHandler_GetByID_InvalidID(t *testing.T) {
	h := NewServiceHandler(&mockContentService{})

	for _, id := range []string{"abc", "0", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/api/services/id/"+id, nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, rec.Code)
		}
	}
}

func TestServiceHandler_Create(t *testing.T) {
	var captured model.ServiceInput
	mock := &mockContentService{
		createServiceFunc: func(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
			captured = in
			return &model.Service{ID: 9, Name: *in.Name, Slug: *in.Slug, Icon: model.DefaultServiceIcon}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(`{"name":"SEO","slug":"seo","featured":false}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body: %s", rec.Code, rec.Body.String())
	}
	if captured.Icon != nil {
		t.Error("expected absent icon to stay nil so the default applies")
	}
	if captured.Featured == nil || *captured.Featured {
		t.Error("expected explicit featured=false to be forwarded")
	}
	var got model.Service
	_ = json.NewDecoder(rec.Body).Decode(&got)
	if got.ID != 9 || got.Icon != "rocket" {
		t.Errorf("unexpected service: %+v", got)
	}
}

func TestServiceHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"missing name", service.ErrNameSlugRequired, http.StatusBadRequest, "name_and_slug_required"},
		{"bad category", service.ErrInvalidCategory, http.StatusBadRequest, "invalid_category"},
		{"duplicate slug", repository.ErrDuplicateSlug, http.StatusBadRequest, "duplicate_slug"},
		{"store failure", &repository.PersistenceError{Op: "service create", Err: errors.New("boom")}, http.StatusInternalServerError, "create_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockContentService{
				createServiceFunc: func(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
					return nil, tt.err
				},
			}
			h := NewServiceHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp map[string]string
			_ = json.NewDecoder(rec.Body).Decode(&resp)
			if resp["error"] != tt.wantBody {
				t.Errorf("expected error=%q, got %q", tt.wantBody, resp["error"])
			}
		})
	}
}

func TestServiceHandler_Update(t *testing.T) {
	var capturedID int64
	mock := &mockContentService{
		updateServiceFunc: func(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error) {
			capturedID = id
			return &model.Service{ID: id, Name: *in.Name, Slug: *in.Slug}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodPut, "/api/services/4", strings.NewReader(`{"name":"Ads","slug":"ads"}`))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if capturedID != 4 {
		t.Errorf("expected id=4, got %d", capturedID)
	}
}

func TestServiceHandler_Update_NotFound(t *testing.T) {
	mock := &mockContentService{
		updateServiceFunc: func(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodPut, "/api/services/99", strings.NewReader(`{"name":"x","slug":"x"}`))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServiceHandler_Delete(t *testing.T) {
	mock := &mockContentService{
		deleteServiceFunc: func(ctx context.Context, id int64) (*model.Service, error) {
			return &model.Service{ID: id, Slug: "gone"}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/services/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Success bool          `json:"success"`
		Deleted model.Service `json:"deleted"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Success || resp.Deleted.ID != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
