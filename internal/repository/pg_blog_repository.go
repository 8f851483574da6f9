package repository

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogSelect = `SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(content, ''), COALESCE(author, ''),
	published, published_at, created_at
	FROM blog_posts`

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

func blogListQuery(includeUnpublished bool) string {
	query := blogSelect
	if !includeUnpublished {
		query += ` WHERE published = true`
	}
	return query + ` ORDER BY published_at DESC NULLS LAST, created_at DESC`
}

// List returns posts, drafts included only when includeUnpublished is set.
func (r *PgBlogRepository) List(ctx context.Context, includeUnpublished bool) ([]*model.BlogPost, error) {
	rows, err := r.pool.Query(ctx, blogListQuery(includeUnpublished))
	if err != nil {
		return nil, storeErr("blog list", err)
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, storeErr("blog list", err)
		}
		posts = append(posts, post)
	}
	return posts, storeErr("blog list", rows.Err())
}

// GetBySlug returns a post whether or not it is published.
func (r *PgBlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := scanBlogPost(r.pool.QueryRow(ctx, blogSelect+` WHERE slug = $1`, slug))
	if err != nil {
		return nil, storeErr("blog get by slug", err)
	}
	return post, nil
}

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var b model.BlogPost
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Author,
		&b.Published, &b.PublishedAt, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
