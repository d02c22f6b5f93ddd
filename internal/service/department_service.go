package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
	"github.com/codewithsreyash/CivicSetu/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=department_service.go -destination=mocks/department_service_mock.go

type DepartmentStore interface {
	Create(ctx context.Context, dept *domain.Department) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindNameByCategory(ctx context.Context, category string) (string, error)
	Categories(ctx context.Context) ([]string, error)
}

// DirectoryCache holds the read-mostly department snapshot.
type DirectoryCache interface {
	Get(ctx context.Context) ([]*domain.Department, error)
	Set(ctx context.Context, depts []*domain.Department, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

const directoryCacheTTL = 5 * time.Minute

// DepartmentService is the department directory: CRUD for admins plus the
// category lookup the lifecycle engine assigns from.
type DepartmentService struct {
	store  DepartmentStore
	cache  DirectoryCache
	logger *slog.Logger
}

func NewDepartmentService(store DepartmentStore, cache DirectoryCache, logger *slog.Logger) *DepartmentService {
	return &DepartmentService{store: store, cache: cache, logger: logger}
}

func (s *DepartmentService) Create(ctx context.Context, req domain.CreateDepartmentRequest) (*domain.Department, error) {
	const op = "service.Department.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	dept := &domain.Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Categories:  req.Categories,
	}
	if req.Head != nil {
		head, err := uuid.Parse(*req.Head)
		if err != nil {
			return nil, fmt.Errorf("%s: head: %w", op, e.ErrInvalidInput)
		}
		dept.Head = &head
	}

	if err := s.store.Create(ctx, dept); err != nil {
		return nil, e.Wrap(op, err)
	}
	s.invalidate(ctx)

	return dept, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	const op = "service.Department.List"

	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn("directory cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	depts, err := s.store.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.cache.Set(ctx, depts, directoryCacheTTL); err != nil {
		s.logger.Warn("directory cache write failed", slog.Any("error", err))
	}

	return depts, nil
}

func (s *DepartmentService) Get(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	const op = "service.Department.Get"

	dept, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return dept, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateDepartmentRequest) (*domain.Department, error) {
	const op = "service.Department.Update"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	dept, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Categories != nil {
		dept.Categories = req.Categories
	}
	if req.Head != nil {
		head, err := uuid.Parse(*req.Head)
		if err != nil {
			return nil, fmt.Errorf("%s: head: %w", op, e.ErrInvalidInput)
		}
		dept.Head = &head
	}

	if err := s.store.Update(ctx, dept); err != nil {
		return nil, e.Wrap(op, err)
	}
	s.invalidate(ctx)

	return dept, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.Department.Delete"

	if err := s.store.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	s.invalidate(ctx)

	return nil
}

func (s *DepartmentService) Categories(ctx context.Context) ([]string, error) {
	const op = "service.Department.Categories"

	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return categories, nil
}

// FindNameByCategory satisfies the lifecycle engine's DepartmentDirectory.
func (s *DepartmentService) FindNameByCategory(ctx context.Context, category string) (string, error) {
	return s.store.FindNameByCategory(ctx, category)
}

func (s *DepartmentService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("directory cache invalidate failed", slog.Any("error", err))
	}
}
