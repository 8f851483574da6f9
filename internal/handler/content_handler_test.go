package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Portfolio
// ---------------------------------------------------------------------------

func TestPortfolioHandler_List(t *testing.T) {
	var captured model.PortfolioFilter
	name := "Web Design"
	mock := &mockContentService{
		listPortfolioFunc: func(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error) {
			captured = filter
			return []*model.PortfolioItem{{ID: 1, Slug: "acme", ServiceName: &name}}, nil
		},
	}
	h := NewPortfolioHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio?featured=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !captured.FeaturedOnly {
		t.Error("expected featured filter")
	}
	var got []model.PortfolioItem
	_ = json.NewDecoder(rec.Body).Decode(&got)
	if len(got) != 1 || got[0].ServiceName == nil || *got[0].ServiceName != name {
		t.Errorf("unexpected items: %+v", got)
	}
}

func TestPortfolioHandler_List_UnlinkedServiceIsNull(t *testing.T) {
	mock := &mockContentService{
		listPortfolioFunc: func(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error) {
			return []*model.PortfolioItem{{ID: 2, Slug: "orphan"}}, nil
		},
	}
	h := NewPortfolioHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"service_name":null`) {
		t.Errorf("expected service_name null, got %s", rec.Body.String())
	}
}

func TestPortfolioHandler_GetBySlug_NotFound(t *testing.T) {
	h := NewPortfolioHandler(&mockContentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/nope", nil)
	req.SetPathValue("slug", "nope")
	rec := httptest.NewRecorder()
	h.GetBySlug(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Blog
// ---------------------------------------------------------------------------

func TestBlogHandler_List_PublishedParam(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?published=all", true},
		{"?published=true", false},
	}
	for _, tt := range tests {
		var captured bool
		mock := &mockContentService{
			listBlogPostsFunc: func(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error) {
				captured = includeUnpublished
				return nil, nil
			},
		}
		h := NewBlogHandler(mock)

		req := httptest.NewRequest(http.MethodGet, "/api/blog"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("query %q: expected 200, got %d", tt.query, rec.Code)
		}
		if captured != tt.want {
			t.Errorf("query %q: includeUnpublished=%v, want %v", tt.query, captured, tt.want)
		}
	}
}

func TestBlogHandler_GetBySlug(t *testing.T) {
	mock := &mockContentService{
		getBlogPostBySlugFunc: func(ctx context.Context, slug string) (*model.BlogPost, error) {
			return &model.BlogPost{ID: 5, Slug: slug, Published: false}, nil
		},
	}
	h := NewBlogHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/blog/draft", nil)
	req.SetPathValue("slug", "draft")
	rec := httptest.NewRecorder()
	h.GetBySlug(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"published_at":null`) {
		t.Errorf("expected published_at null for a draft, got %s", rec.Body.String())
	}
}

func TestBlogHandler_List_ServiceError(t *testing.T) {
	mock := &mockContentService{
		listBlogPostsFunc: func(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error) {
			return nil, &repository.PersistenceError{Op: "blog list", Err: errors.New("timeout")}
		},
	}
	h := NewBlogHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Admin stats
// ---------------------------------------------------------------------------

func TestAdminHandler_Stats(t *testing.T) {
	mock := &mockStatsService{
		statsFunc: func(ctx context.Context) (*model.DashboardStats, error) {
			return &model.DashboardStats{Services: 3, Portfolio: 2, BlogPosts: 4, ContactSubmissions: 10}, nil
		},
	}
	h := NewAdminHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.DashboardStats
	_ = json.NewDecoder(rec.Body).Decode(&got)
	if got.ContactSubmissions != 10 || got.BlogPosts != 4 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

func TestAdminHandler_Stats_Error(t *testing.T) {
	mock := &mockStatsService{
		statsFunc: func(ctx context.Context) (*model.DashboardStats, error) {
			return nil, errors.New("count failed")
		},
	}
	h := NewAdminHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
