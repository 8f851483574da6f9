package service

import (
	"context"

	"github.com/bronsonbrode/backend/internal/model"
	"github.com/bronsonbrode/backend/internal/repository"
)

// StatsService backs the admin dashboard.
type StatsService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

type statsServiceImpl struct {
	repo repository.StatsRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsServiceImpl{repo: repo}
}

func (s *statsServiceImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.repo.Counts(ctx)
}
