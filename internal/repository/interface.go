package repository

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ServiceRepository persists services.
type ServiceRepository interface {
	List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	GetBySlug(ctx context.Context, slug string) (*model.Service, error)
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id int64) (*model.Service, error)
}

// PortfolioRepository reads portfolio items joined with their service name.
type PortfolioRepository interface {
	List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error)
	GetBySlug(ctx context.Context, slug string) (*model.PortfolioItem, error)
}

// BlogRepository reads blog posts.
type BlogRepository interface {
	List(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

// ContactRepository persists contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, sub model.NewContactSubmission) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]*model.ContactSubmission, error)
	Delete(ctx context.Context, id int64) (*model.ContactSubmission, error)
	// DeleteMany removes every listed id that exists and returns the removed rows.
	DeleteMany(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error)
}

// StatsRepository counts rows for the admin dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (*model.DashboardStats, error)
}
