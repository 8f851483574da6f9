package repository

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `id, name, email, phone, to_char(contact_date, 'YYYY-MM-DD'), category, message, terms_accepted, created_at`

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a contact_submissions row. id and created_at are assigned by
// the database. The submission is stored as given; callers validate first.
func (r *PgContactRepository) Create(ctx context.Context, sub model.NewContactSubmission) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, contact_date, category, message, terms_accepted)
		 VALUES ($1, $2, $3, $4::date, $5, $6, $7)
		 RETURNING `+contactColumns,
		sub.Name, sub.Email, sub.Phone, sub.ContactDate, sub.Category, sub.Message, sub.TermsAccepted,
	)
	s, err := scanContact(row)
	if err != nil {
		return nil, storeErr("contact create", err)
	}
	return s, nil
}

// List returns every submission, most recent first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contact_submissions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("contact list", err)
	}
	return collectContacts("contact list", rows)
}

// Delete removes one submission and returns it, or ErrNotFound.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM contact_submissions WHERE id = $1 RETURNING `+contactColumns, id)
	s, err := scanContact(row)
	if err != nil {
		return nil, storeErr("contact delete", err)
	}
	return s, nil
}

// DeleteMany removes the submissions whose id is in ids in one statement.
// Ids with no matching row are skipped.
func (r *PgContactRepository) DeleteMany(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`DELETE FROM contact_submissions WHERE id = ANY($1) RETURNING `+contactColumns, ids)
	if err != nil {
		return nil, storeErr("contact delete many", err)
	}
	return collectContacts("contact delete many", rows)
}

func collectContacts(op string, rows pgx.Rows) ([]*model.ContactSubmission, error) {
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		subs = append(subs, s)
	}
	return subs, storeErr(op, rows.Err())
}

func scanContact(row pgx.Row) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.ContactDate, &s.Category,
		&s.Message, &s.TermsAccepted, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
