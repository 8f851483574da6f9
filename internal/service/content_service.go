package service

import (
	"context"
	"strings"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
)

// ContentService serves the public site content. Services are also editable
// from the admin console; portfolio items and blog posts are read-only here.
type ContentService interface {
	ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*model.Service, error)
	CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error)
	// UpdateService replaces every mutable field; omitted fields reset to their defaults.
	UpdateService(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error)
	DeleteService(ctx context.Context, id int64) (*model.Service, error)

	ListPortfolio(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error)
	GetPortfolioBySlug(ctx context.Context, slug string) (*model.PortfolioItem, error)

	ListBlogPosts(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error)
	// GetBlogPostBySlug does not hide unpublished posts.
	GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

// ContentServiceImpl は ContentService の実装
type ContentServiceImpl struct {
	services  repository.ServiceRepository
	portfolio repository.PortfolioRepository
	blog      repository.BlogRepository
}

// NewContentService は ContentServiceImpl を生成する
func NewContentService(services repository.ServiceRepository, portfolio repository.PortfolioRepository, blog repository.BlogRepository) ContentService {
	return &ContentServiceImpl{services: services, portfolio: portfolio, blog: blog}
}

func (s *ContentServiceImpl) ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	return s.services.List(ctx, filter)
}

func (s *ContentServiceImpl) GetServiceBySlug(ctx context.Context, slug string) (*model.Service, error) {
	return s.services.GetBySlug(ctx, slug)
}

func (s *ContentServiceImpl) GetServiceByID(ctx context.Context, id int64) (*model.Service, error) {
	return s.services.GetByID(ctx, id)
}

// CreateService は入力にデフォルト値を補ってサービスを作成する
func (s *ContentServiceImpl) CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
	svc, err := serviceFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService は全フィールドを置き換える（部分更新ではない）
func (s *ContentServiceImpl) UpdateService(ctx context.Context, id int64, in model.ServiceInput) (*model.Service, error) {
	svc, err := serviceFromInput(in)
	if err != nil {
		return nil, err
	}
	svc.ID = id
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ContentServiceImpl) DeleteService(ctx context.Context, id int64) (*model.Service, error) {
	return s.services.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListPortfolio(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error) {
	return s.portfolio.List(ctx, filter)
}

func (s *ContentServiceImpl) GetPortfolioBySlug(ctx context.Context, slug string) (*model.PortfolioItem, error) {
	return s.portfolio.GetBySlug(ctx, slug)
}

func (s *ContentServiceImpl) ListBlogPosts(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error) {
	return s.blog.List(ctx, includeUnpublished)
}

func (s *ContentServiceImpl) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.blog.GetBySlug(ctx, slug)
}

// serviceFromInput applies defaults for every field the input left out.
// An empty description is stored as NULL.
func serviceFromInput(in model.ServiceInput) (*model.Service, error) {
	name := strings.TrimSpace(valueOr(in.Name, ""))
	slug := strings.TrimSpace(valueOr(in.Slug, ""))
	if name == "" || slug == "" {
		return nil, ErrNameSlugRequired
	}

	svc := &model.Service{
		Name:      name,
		Slug:      slug,
		Icon:      valueOr(in.Icon, ""),
		Category:  valueOr(in.Category, ""),
		Featured:  valueOr(in.Featured, false),
		SortOrder: valueOr(in.SortOrder, 0),
	}
	if svc.Icon == "" {
		svc.Icon = model.DefaultServiceIcon
	}
	if svc.Category == "" {
		svc.Category = model.DefaultServiceCategory
	}
	if !model.IsServiceCategory(svc.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Description != nil && *in.Description != "" {
		d := *in.Description
		svc.Description = &d
	}
	return svc, nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
