package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountByField(ctx context.Context, field domain.StatField, department string) ([]domain.StatCount, error) {
	const op = "postgres.Stats.CountByField"

	// statement text comes only from this enum, never from caller input
	switch field {
	case domain.StatByStatus, domain.StatByCategory, domain.StatByPriority:
	default:
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(%s::text, ''), COUNT(*)
		FROM reports
		WHERE ($1 = '' OR assigned_department = $1)
		GROUP BY 1
		ORDER BY 1
	`, field)

	rows, err := p.pool.Query(ctx, query, department)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make([]domain.StatCount, 0, 4)
	for rows.Next() {
		var c domain.StatCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (p *StatsRepo) DailyCounts(ctx context.Context, department string, days int) ([]domain.DailyCount, error) {
	const op = "postgres.Stats.DailyCounts"

	if days <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// Sliding window from the moment of the query; days with zero reports
	// produce no row.
	const query = `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM reports
		WHERE created_at >= NOW() - ($2 * INTERVAL '1 day')
		  AND ($1 = '' OR assigned_department = $1)
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := p.pool.Query(ctx, query, department, days)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make([]domain.DailyCount, 0, days)
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}
