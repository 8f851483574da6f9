package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceColumns = `id, name, slug, description, icon, category, featured, sort_order, created_at, updated_at`

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

// serviceListQuery builds the SELECT for List. Placeholders are numbered in
// the order their values appear in args.
func serviceListQuery(filter model.ServiceFilter) (string, []any) {
	var conditions []string
	var args []any

	if c := strings.TrimSpace(filter.Category); c != "" {
		args = append(args, c)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "featured = true")
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY sort_order ASC, id ASC`
	return query, args
}

// List returns services matching filter ordered by sort_order.
func (r *PgServiceRepository) List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	query, args := serviceListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("service list", err)
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, storeErr("service list", err)
		}
		services = append(services, s)
	}
	return services, storeErr("service list", rows.Err())
}

// GetBySlug は slug でサービスを取得する
func (r *PgServiceRepository) GetBySlug(ctx context.Context, slug string) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug)
	s, err := scanService(row)
	if err != nil {
		return nil, storeErr("service get by slug", err)
	}
	return s, nil
}

// GetByID は ID でサービスを取得する
func (r *PgServiceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	s, err := scanService(row)
	if err != nil {
		return nil, storeErr("service get by id", err)
	}
	return s, nil
}

// Create inserts svc and fills ID and timestamps from RETURNING.
// A slug collision yields ErrDuplicateSlug and leaves the existing row untouched.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO services (name, slug, description, icon, category, featured, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		svc.Name, svc.Slug, svc.Description, svc.Icon, svc.Category, svc.Featured, svc.SortOrder,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	return storeErr("service create", err)
}

// Update replaces every mutable column of the row identified by svc.ID.
func (r *PgServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE services
		 SET name=$1, slug=$2, description=$3, icon=$4, category=$5, featured=$6, sort_order=$7, updated_at=NOW()
		 WHERE id=$8
		 RETURNING created_at, updated_at`,
		svc.Name, svc.Slug, svc.Description, svc.Icon, svc.Category, svc.Featured, svc.SortOrder, svc.ID,
	).Scan(&svc.CreatedAt, &svc.UpdatedAt)
	return storeErr("service update", err)
}

// Delete はサービスを削除し、削除した行を返す
func (r *PgServiceRepository) Delete(ctx context.Context, id int64) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `DELETE FROM services WHERE id = $1 RETURNING `+serviceColumns, id)
	s, err := scanService(row)
	if err != nil {
		return nil, storeErr("service delete", err)
	}
	return s, nil
}

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Icon, &s.Category,
		&s.Featured, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
