package service

import (
	"context"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

//go:generate mockgen -source=stats_service.go -destination=mocks/stats_service_mock.go

type StatsStore interface {
	CountByField(ctx context.Context, field domain.StatField, department string) ([]domain.StatCount, error)
	DailyCounts(ctx context.Context, department string, days int) ([]domain.DailyCount, error)
}

const dailyWindowDays = 30

type statsService struct {
	store StatsStore
}

func NewStatsService(store StatsStore) Stats {
	return &statsService{store: store}
}

// Compute aggregates all in-scope reports. Department staff only ever see
// their own department's numbers; the policy gate itself lives in the
// serving layer's role check plus the scope applied here.
func (s *statsService) Compute(ctx context.Context, caller domain.Identity) (*domain.ReportStats, error) {
	const op = "service.Stats.Compute"

	if err := Authorize(ActionViewStats, caller, Resource{}); err != nil {
		return nil, err
	}

	scope := ""
	if caller.Role == domain.RoleDepartmentStaff {
		scope = caller.Department
	}

	byStatus, err := s.store.CountByField(ctx, domain.StatByStatus, scope)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	byCategory, err := s.store.CountByField(ctx, domain.StatByCategory, scope)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	byPriority, err := s.store.CountByField(ctx, domain.StatByPriority, scope)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	daily, err := s.store.DailyCounts(ctx, scope, dailyWindowDays)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.ReportStats{
		ByStatus:   byStatus,
		ByCategory: byCategory,
		ByPriority: byPriority,
		Daily:      daily,
	}, nil
}
