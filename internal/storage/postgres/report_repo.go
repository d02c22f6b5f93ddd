package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `
		id,
		title,
		description,
		category,
		ST_X(geo_point::geometry) AS lng,
		ST_Y(geo_point::geometry) AS lat,
		address,
		priority,
		status,
		images,
		reported_by,
		assigned_to,
		assigned_department,
		created_at,
		updated_at`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		rep        domain.Report
		assignedTo uuid.NullUUID
		dept       *string
	)
	err := row.Scan(
		&rep.ID,
		&rep.Title,
		&rep.Description,
		&rep.Category,
		&rep.Location.Lng,
		&rep.Location.Lat,
		&rep.Location.Address,
		&rep.Priority,
		&rep.Status,
		&rep.Images,
		&rep.ReportedBy,
		&assignedTo,
		&dept,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignedTo.Valid {
		rep.AssignedTo = &assignedTo.UUID
	}
	if dept != nil {
		rep.AssignedDepartment = *dept
	}
	return &rep, nil
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports
			(id, title, description, category, geo_point, address,
			 priority, status, images, reported_by, assigned_department, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7,
			 $8, $9, $10, $11, $12, $13, $13)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Priority == "" {
		report.Priority = domain.PriorityMedium
	}
	if report.Status == "" {
		report.Status = domain.ReportPending
	}
	if report.Images == nil {
		report.Images = []string{}
	}

	var dept *string
	if report.AssignedDepartment != "" {
		dept = &report.AssignedDepartment
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Title,
		report.Description,
		report.Category,
		report.Location.Lng,
		report.Location.Lat,
		report.Location.Address,
		report.Priority,
		report.Status,
		report.Images,
		report.ReportedBy,
		dept,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	rep, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if rep.Comments, err = p.comments(ctx, id); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if rep.Subscribers, err = p.Subscribers(ctx, id); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return rep, nil
}

func (p *ReportRepo) List(ctx context.Context, filter domain.ReportFilter, page, limit int) ([]*domain.Report, int64, error) {
	const op = "postgres.Report.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	where, args := buildReportFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM reports` + where
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + reportColumns + ` FROM reports` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := p.pool.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

func buildReportFilter(filter domain.ReportFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Priority != "" {
		add("priority = $%d", filter.Priority)
	}
	if filter.Department != "" {
		add("assigned_department = $%d", filter.Department)
	}
	if filter.ReportedBy != uuid.Nil {
		add("reported_by = $%d", filter.ReportedBy)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus, actor uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.UpdateStatus"

	// Single statement keeps the first-in_progress assignment atomic under
	// concurrent updates; an existing assigned_to is never overwritten.
	query := `
		UPDATE reports
		SET status      = $2,
			assigned_to = CASE
				WHEN $2 = 'in_progress' THEN COALESCE(assigned_to, $3)
				ELSE assigned_to
			END,
			updated_at  = now()
		WHERE id = $1
		RETURNING ` + reportColumns

	rep, err := scanReport(p.pool.QueryRow(ctx, query, id, status, actor))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rep, nil
}

func (p *ReportRepo) AddComment(ctx context.Context, reportID uuid.UUID, comment *domain.Comment) error {
	const op = "postgres.Report.AddComment"

	// Comments land in their own table, so a concurrent status update on
	// the same report cannot lose them.
	const query = `
		INSERT INTO report_comments (id, report_id, author_id, body, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE EXISTS (SELECT 1 FROM reports WHERE id = $2)
	`

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	cmd, err := p.pool.Exec(ctx, query,
		comment.ID,
		reportID,
		comment.Author,
		comment.Text,
		comment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", reportID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ReportRepo) comments(ctx context.Context, reportID uuid.UUID) ([]domain.Comment, error) {
	const query = `
		SELECT id, body, author_id, created_at
		FROM report_comments
		WHERE report_id = $1
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0, 4)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (p *ReportRepo) Subscribe(ctx context.Context, reportID, userID uuid.UUID) error {
	const op = "postgres.Report.Subscribe"

	// ON CONFLICT makes the operation idempotent under concurrent calls.
	const query = `
		INSERT INTO report_subscriptions (report_id, user_id)
		SELECT $1, $2
		WHERE EXISTS (SELECT 1 FROM reports WHERE id = $1)
		ON CONFLICT (report_id, user_id) DO NOTHING
	`

	cmd, err := p.pool.Exec(ctx, query, reportID, userID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", reportID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		// already subscribed, or the report is gone
		return p.requireReport(ctx, op, reportID)
	}

	return nil
}

func (p *ReportRepo) Unsubscribe(ctx context.Context, reportID, userID uuid.UUID) error {
	const op = "postgres.Report.Unsubscribe"

	const query = `DELETE FROM report_subscriptions WHERE report_id = $1 AND user_id = $2`

	cmd, err := p.pool.Exec(ctx, query, reportID, userID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", reportID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		// not subscribed is fine, a missing report is not
		return p.requireReport(ctx, op, reportID)
	}

	return nil
}

func (p *ReportRepo) IsSubscribed(ctx context.Context, reportID, userID uuid.UUID) (bool, error) {
	const op = "postgres.Report.IsSubscribed"

	if err := p.requireReport(ctx, op, reportID); err != nil {
		return false, err
	}

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM report_subscriptions WHERE report_id = $1 AND user_id = $2
		)
	`

	var subscribed bool
	if err := p.pool.QueryRow(ctx, query, reportID, userID).Scan(&subscribed); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return subscribed, nil
}

func (p *ReportRepo) Subscribers(ctx context.Context, reportID uuid.UUID) ([]uuid.UUID, error) {
	const op = "postgres.Report.Subscribers"

	const query = `SELECT user_id FROM report_subscriptions WHERE report_id = $1`

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}

func (p *ReportRepo) requireReport(ctx context.Context, op string, reportID uuid.UUID) error {
	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reports WHERE id = $1)`, reportID).Scan(&exists); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
