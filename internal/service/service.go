package service

import (
	"context"

	"github.com/codewithsreyash/CivicSetu/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportLifecycle owns the report state machine: creation with
// auto-assignment, status transitions, comments and the proximity query.
type ReportLifecycle interface {
	Create(ctx context.Context, caller domain.Identity, req domain.CreateReportRequest) (*domain.Report, error)
	Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, caller domain.Identity, req domain.ListReportsRequest) (*domain.ListReportsResponse, error)
	UpdateStatus(ctx context.Context, caller domain.Identity, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
	AddComment(ctx context.Context, caller domain.Identity, id uuid.UUID, text string) (*domain.Report, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.Report, error)
}

type Subscriptions interface {
	Subscribe(ctx context.Context, caller domain.Identity, reportID uuid.UUID) error
	Unsubscribe(ctx context.Context, caller domain.Identity, reportID uuid.UUID) error
	Status(ctx context.Context, caller domain.Identity, reportID uuid.UUID) (bool, error)
	RegisterToken(ctx context.Context, caller domain.Identity, token string) error
}

type Stats interface {
	Compute(ctx context.Context, caller domain.Identity) (*domain.ReportStats, error)
}

type Departments interface {
	Create(ctx context.Context, req domain.CreateDepartmentRequest) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

// Dispatcher fans a lifecycle event out to the report's subscribers.
type Dispatcher interface {
	Dispatch(ctx context.Context, reportID uuid.UUID, title, body string) error
}

type Service struct {
	Reports       ReportLifecycle
	Subscriptions Subscriptions
	Stats         Stats
	Departments   Departments
}

func NewService(
	reports ReportLifecycle,
	subscriptions Subscriptions,
	stats Stats,
	departments Departments,
) *Service {
	return &Service{
		Reports:       reports,
		Subscriptions: subscriptions,
		Stats:         stats,
		Departments:   departments,
	}
}
