package handler

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc     func(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error)
	listFunc       func(ctx context.Context) ([]*model.ContactSubmission, error)
	deleteFunc     func(ctx context.Context, id int64) (*model.ContactSubmission, error)
	deleteManyFunc func(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, form)
	}
	return &model.ContactSubmission{ID: 1}, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) DeleteMany(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error) {
	if m.deleteManyFunc != nil {
		return m.deleteManyFunc(ctx, ids)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Mock ContentService
// ---------------------------------------------------------------------------

type mockContentService struct {
	listServicesFunc       func(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	getServiceBySlugFunc   func(ctx context.Context, slug string) (*model.Service, error)
	getServiceByIDFunc     func(ctx context.Context, id int64) (*model.Service, error)
	createServiceFunc      func(ctx context.Context, in model.ServiceInput) (*model.Service, error)
	updateServiceFunc      func(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error)
	deleteServiceFunc      func(ctx context.Context, id int64) (*model.Service, error)
	listPortfolioFunc      func(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error)
	getPortfolioBySlugFunc func(ctx context.Context, slug string) (*model.PortfolioItem, error)
	listBlogPostsFunc      func(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error)
	getBlogPostBySlugFunc  func(ctx context.Context, slug string) (*model.BlogPost, error)
}

func (m *mockContentService) ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	if m.listServicesFunc != nil {
		return m.listServicesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockContentService) GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error) {
	if m.getServiceBySlugFunc != nil {
		return m.getServiceBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContentService) GetServiceByID(ctx context.Context, id int64) (*model.Service, error) {
	if m.getServiceByIDFunc != nil {
		return m.getServiceByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContentService) CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
	if m.createServiceFunc != nil {
		return m.createServiceFunc(ctx, in)
	}
	return &model.Service{ID: 1}, nil
}

func (m *mockContentService) UpdateService(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error) {
	if m.updateServiceFunc != nil {
		return m.updateServiceFunc(ctx, id, in)
	}
	return &model.Service{ID: id}, nil
}

func (m *mockContentService) DeleteService(ctx context.Context, id int64) (*model.Service, error) {
	if m.deleteServiceFunc != nil {
		return m.deleteServiceFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContentService) ListPortfolio(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error) {
	if m.listPortfolioFunc != nil {
		return m.listPortfolioFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockContentService) GetPortfolioBySlug(ctx context.Context, slug string) (*model.PortfolioItem, error) {
	if m.getPortfolioBySlugFunc != nil {
		return m.getPortfolioBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContentService) ListBlogPosts(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error) {
	if m.listBlogPostsFunc != nil {
		return m.listBlogPostsFunc(ctx, includeUnpublished)
	}
	return nil, nil
}

func (m *mockContentService) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if m.getBlogPostBySlugFunc != nil {
		return m.getBlogPostBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

// ---------------------------------------------------------------------------
// Mock StatsService
// ---------------------------------------------------------------------------

type mockStatsService struct {
	statsFunc func(ctx context.Context) (*model.DashboardStats, error)
}

func (m *mockStatsService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.DashboardStats{}, nil
}
