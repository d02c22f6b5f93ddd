package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
	"github.com/codewithsreyash/CivicSetu/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=report_service.go -destination=mocks/report_service_mock.go

// ReportStore is the slice of the report store the lifecycle engine needs.
type ReportStore interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter, page, limit int) ([]*domain.Report, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, actor uuid.UUID) (*domain.Report, error)
	AddComment(ctx context.Context, reportID uuid.UUID, comment *domain.Comment) error
}

type GeoStore interface {
	FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.Report, error)
}

// DepartmentDirectory answers "which department owns this category".
type DepartmentDirectory interface {
	FindNameByCategory(ctx context.Context, category string) (string, error)
}

const (
	defaultPageSize       = 10
	defaultNearbyDistance = 5000 // meters
)

type reportService struct {
	store      ReportStore
	geo        GeoStore
	directory  DepartmentDirectory
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewReportService(
	store ReportStore,
	geo GeoStore,
	directory DepartmentDirectory,
	dispatcher Dispatcher,
	logger *slog.Logger,
) ReportLifecycle {
	return &reportService{
		store:      store,
		geo:        geo,
		directory:  directory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *reportService) Create(ctx context.Context, caller domain.Identity, req domain.CreateReportRequest) (*domain.Report, error) {
	const op = "service.Report.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	report := &domain.Report{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Priority:    req.Priority,
		Status:      domain.ReportPending,
		Images:      req.Images,
		ReportedBy:  caller.ID,
	}
	if report.Priority == "" {
		report.Priority = domain.PriorityMedium
	}

	// Auto-assignment happens exactly once, at creation time.
	dept, err := s.directory.FindNameByCategory(ctx, req.Category)
	switch {
	case err == nil:
		report.AssignedDepartment = dept
	case errors.Is(err, e.ErrNotFound):
		// no department owns the category, leave unassigned
	default:
		return nil, e.Wrap(op, err)
	}

	if err := s.store.Create(ctx, report); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("category", report.Category),
		slog.String("assigned_department", report.AssignedDepartment),
	)

	return report, nil
}

func (s *reportService) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.Report, error) {
	const op = "service.Report.Get"

	report, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := Authorize(ActionViewReport, caller, Resource{ReportedBy: report.ReportedBy}); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) List(ctx context.Context, caller domain.Identity, req domain.ListReportsRequest) (*domain.ListReportsResponse, error) {
	const op = "service.Report.List"

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = defaultPageSize
	}

	filter := domain.ReportFilter{
		Status:   req.Status,
		Category: req.Category,
		Priority: req.Priority,
	}

	// Scope filters come from the caller's role, never from the query.
	switch caller.Role {
	case domain.RoleDepartmentStaff:
		filter.Department = caller.Department
	case domain.RoleCitizen:
		filter.ReportedBy = caller.ID
	}

	reports, total, err := s.store.List(ctx, filter, req.Page, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.ListReportsResponse{
		Reports: reports,
		Page:    req.Page,
		Pages:   int(math.Ceil(float64(total) / float64(req.Limit))),
		Total:   total,
	}, nil
}

func (s *reportService) UpdateStatus(ctx context.Context, caller domain.Identity, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error) {
	const op = "service.Report.UpdateStatus"

	if !status.Valid() {
		return nil, fmt.Errorf("%s: status %q: %w", op, status, e.ErrInvalidInput)
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := Authorize(ActionUpdateStatus, caller, Resource{Department: current.AssignedDepartment}); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, status, caller.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// The dispatch boundary is the queue; a dispatch failure never fails
	// the status update itself.
	body := fmt.Sprintf("Your subscribed report %q is now %s.", updated.Title, status.Human())
	if err := s.dispatcher.Dispatch(ctx, id, "Report status updated", body); err != nil {
		s.logger.Error("notification dispatch failed",
			slog.String("op", op),
			slog.String("report_id", id.String()),
			slog.Any("error", err),
		)
	}

	return updated, nil
}

func (s *reportService) AddComment(ctx context.Context, caller domain.Identity, id uuid.UUID, text string) (*domain.Report, error) {
	const op = "service.Report.AddComment"

	if text == "" {
		return nil, fmt.Errorf("%s: empty comment: %w", op, e.ErrInvalidInput)
	}

	comment := &domain.Comment{
		ID:     uuid.New(),
		Text:   text,
		Author: caller.ID,
	}
	if err := s.store.AddComment(ctx, id, comment); err != nil {
		return nil, e.Wrap(op, err)
	}

	// reload so the response carries the full ordered comment list
	report, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return report, nil
}

func (s *reportService) Nearby(ctx context.Context, req domain.NearbyRequest) ([]*domain.Report, error) {
	const op = "service.Report.Nearby"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidCoordinates)
	}
	if req.MaxDistance <= 0 {
		req.MaxDistance = defaultNearbyDistance
	}

	reports, err := s.geo.FindNearby(ctx, req.Lng, req.Lat, req.MaxDistance)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return reports, nil
}
