package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GeoRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGeoRepo(pool *pgxpool.Pool, logger *slog.Logger) *GeoRepo {
	return &GeoRepo{pool: pool, logger: logger}
}

func (p *GeoRepo) FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64) ([]*domain.Report, error) {
	const op = "postgres.Geo.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if maxDistanceMeters <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geo_point is geometry(4326); cast to geography so ST_DWithin works
	// in meters on the sphere.
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE ST_DWithin(
			geo_point::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, maxDistanceMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0, 8)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
