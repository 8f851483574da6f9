package repository

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Text columns are nullable in the schema; they are read as empty strings.
const portfolioSelect = `SELECT p.id, p.title, p.slug, COALESCE(p.client_name, ''), COALESCE(p.description, ''),
	COALESCE(p.challenge, ''), COALESCE(p.solution, ''), COALESCE(p.results, ''),
	p.service_id, s.name, p.featured, p.created_at
	FROM portfolio p
	LEFT JOIN services s ON p.service_id = s.id`

// PgPortfolioRepository is the PostgreSQL implementation of PortfolioRepository.
type PgPortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPgPortfolioRepository creates a PgPortfolioRepository backed by the given pool.
func NewPgPortfolioRepository(pool *pgxpool.Pool) *PgPortfolioRepository {
	return &PgPortfolioRepository{pool: pool}
}

var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

func portfolioListQuery(filter model.PortfolioFilter) string {
	query := portfolioSelect
	if filter.FeaturedOnly {
		query += ` WHERE p.featured = true`
	}
	return query + ` ORDER BY p.created_at DESC, p.id DESC`
}

// List returns portfolio items newest first.
func (r *PgPortfolioRepository) List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioItem, error) {
	rows, err := r.pool.Query(ctx, portfolioListQuery(filter))
	if err != nil {
		return nil, storeErr("portfolio list", err)
	}
	defer rows.Close()

	var items []*model.PortfolioItem
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, storeErr("portfolio list", err)
		}
		items = append(items, item)
	}
	return items, storeErr("portfolio list", rows.Err())
}

// GetBySlug returns one item regardless of its featured flag.
func (r *PgPortfolioRepository) GetBySlug(ctx context.Context, slug string) (*model.PortfolioItem, error) {
	item, err := scanPortfolioItem(r.pool.QueryRow(ctx, portfolioSelect+` WHERE p.slug = $1`, slug))
	if err != nil {
		return nil, storeErr("portfolio get by slug", err)
	}
	return item, nil
}

func scanPortfolioItem(row pgx.Row) (*model.PortfolioItem, error) {
	var p model.PortfolioItem
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.ClientName, &p.Description,
		&p.Challenge, &p.Solution, &p.Results,
		&p.ServiceID, &p.ServiceName, &p.Featured, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
