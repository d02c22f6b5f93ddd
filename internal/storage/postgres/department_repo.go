package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DepartmentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDepartmentRepo(pool *pgxpool.Pool, logger *slog.Logger) *DepartmentRepo {
	return &DepartmentRepo{pool: pool, logger: logger}
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var (
		dept domain.Department
		head uuid.NullUUID
	)
	err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.Categories,
		&head,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if head.Valid {
		dept.Head = &head.UUID
	}
	return &dept, nil
}

func (p *DepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	const op = "postgres.Department.Create"

	const query = `
		INSERT INTO departments (id, name, description, categories, head_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	if dept.ID == uuid.Nil {
		dept.ID = uuid.New()
	}
	if dept.CreatedAt.IsZero() {
		dept.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		dept.ID,
		dept.Name,
		dept.Description,
		dept.Categories,
		dept.Head,
		dept.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("name", dept.Name))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DepartmentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	const op = "postgres.Department.Get"

	const query = `
		SELECT id, name, description, categories, head_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	dept, err := scanDepartment(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return dept, nil
}

func (p *DepartmentRepo) List(ctx context.Context) ([]*domain.Department, error) {
	const op = "postgres.Department.List"

	const query = `
		SELECT id, name, description, categories, head_id, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var depts []*domain.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		depts = append(depts, dept)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return depts, nil
}

func (p *DepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	const op = "postgres.Department.Update"

	const query = `
		UPDATE departments
		SET name        = $2,
			description = $3,
			categories  = $4,
			head_id     = $5,
			updated_at  = now()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		dept.ID,
		dept.Name,
		dept.Description,
		dept.Categories,
		dept.Head,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", dept.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *DepartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Department.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *DepartmentRepo) FindNameByCategory(ctx context.Context, category string) (string, error) {
	const op = "postgres.Department.FindNameByCategory"

	// ORDER BY name makes the tie-break deterministic when several
	// departments claim the same category.
	const query = `
		SELECT name
		FROM departments
		WHERE $1 = ANY (categories)
		ORDER BY name ASC
		LIMIT 1
	`

	var name string
	err := p.pool.QueryRow(ctx, query, category).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("category", category))
		return "", e.WrapError(ctx, op, err)
	}

	return name, nil
}

func (p *DepartmentRepo) Categories(ctx context.Context) ([]string, error) {
	const op = "postgres.Department.Categories"

	const query = `SELECT DISTINCT unnest(categories) AS category FROM departments ORDER BY category`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	categories := make([]string, 0, 16)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return categories, nil
}
