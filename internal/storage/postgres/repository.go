package postgres

import (
	"context"

	"github.com/codewithsreyash/CivicSetu/internal/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter, page, limit int) ([]*domain.Report, int64, error)
	// UpdateStatus sets the status in a single statement; when the new
	// status is in_progress and assigned_to is still null it also records
	// the actor, without touching an existing assignment.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, actor uuid.UUID) (*domain.Report, error)
	AddComment(ctx context.Context, reportID uuid.UUID, comment *domain.Comment) error
	Subscribe(ctx context.Context, reportID, userID uuid.UUID) error
	Unsubscribe(ctx context.Context, reportID, userID uuid.UUID) error
	IsSubscribed(ctx context.Context, reportID, userID uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, reportID uuid.UUID) ([]uuid.UUID, error)
}

type GeoRepository interface {
	FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.Report, error)
}

type StatsRepository interface {
	CountByField(ctx context.Context, field domain.StatField, department string) ([]domain.StatCount, error)
	DailyCounts(ctx context.Context, department string, days int) ([]domain.DailyCount, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindNameByCategory returns the owning department's name,
	// lexicographically first when several claim the category.
	FindNameByCategory(ctx context.Context, category string) (string, error)
	Categories(ctx context.Context) ([]string, error)
}

type PushTokenRepository interface {
	Save(ctx context.Context, userID uuid.UUID, token string) error
	TokensFor(ctx context.Context, userIDs []uuid.UUID) ([]string, error)
}
