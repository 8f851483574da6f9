package repository

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStatsRepository counts rows across the content tables.
type PgStatsRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatsRepository creates a PgStatsRepository backed by the given pool.
func NewPgStatsRepository(pool *pgxpool.Pool) *PgStatsRepository {
	return &PgStatsRepository{pool: pool}
}

var _ StatsRepository = (*PgStatsRepository)(nil)

// Counts returns all four counts from a single statement.
func (r *PgStatsRepository) Counts(ctx context.Context) (*model.DashboardStats, error) {
	var s model.DashboardStats
	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM services),
		   (SELECT COUNT(*) FROM portfolio),
		   (SELECT COUNT(*) FROM blog_posts),
		   (SELECT COUNT(*) FROM contact_submissions)`,
	).Scan(&s.Services, &s.Portfolio, &s.BlogPosts, &s.ContactSubmissions)
	if err != nil {
		return nil, storeErr("stats counts", err)
	}
	return &s, nil
}
