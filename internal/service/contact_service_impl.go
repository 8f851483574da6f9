package service

import (
	"context"
	"time"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
	"github.com/bronsonbrode/backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
// now decides "today" for the contact date rule; nil means time.Now.
func NewContactService(repo repository.ContactRepository, now func() time.Time) ContactService {
	if now == nil {
		now = time.Now
	}
	return &contactServiceImpl{repo: repo, now: now}
}

// Submit validates the form and persists the trimmed submission.
func (s *contactServiceImpl) Submit(ctx context.Context, form model.ContactForm) (*model.ContactSubmission, error) {
	now := s.now()
	if errs := validation.ValidateContact(form, now); !errs.Valid() {
		return nil, errs
	}
	return s.repo.Create(ctx, validation.ToSubmission(form, now.Location()))
}

// List returns all submissions.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

// Delete removes the submission with the given id.
func (s *contactServiceImpl) Delete(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	return s.repo.Delete(ctx, id)
}

// DeleteMany removes the given ids, duplicates collapsed.
func (s *contactServiceImpl) DeleteMany(ctx context.Context, ids []int64) ([]*model.ContactSubmission, error) {
	if len(ids) == 0 {
		return nil, ErrIDsRequired
	}
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return s.repo.DeleteMany(ctx, unique)
}
