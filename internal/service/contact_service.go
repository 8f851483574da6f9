package service

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates form and, only when every field passes, stores it.
	// Validation failures are returned as validation.Errors.
	Submit(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error)

	// List returns every submission, most recent first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// Delete removes one submission; repository.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id int64) (*model.ContactSubmission, error)

	// DeleteMany removes the existing submissions among ids and returns them.
	// Unknown ids are skipped. An empty ids yields ErrIDsRequired.
	DeleteMany(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error)
}
