package postgres

import (
	"context"
	"embed"
	"fmt"

	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/config"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Postgres struct {
	Pool        *pgxpool.Pool
	Reports     ReportRepository
	Geo         GeoRepository
	Stat        StatsRepository
	Departments DepartmentRepository
	Tokens      PushTokenRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.Database)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := Migrate(pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	pg := &Postgres{
		Pool:        pool,
		Reports:     NewReportRepo(pool, logger),
		Geo:         NewGeoRepo(pool, logger),
		Stat:        NewStatsRepo(pool, logger),
		Departments: NewDepartmentRepo(pool, logger),
		Tokens:      NewPushTokenRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

// Migrate applies the embedded goose migrations through a database/sql
// view of the pool's config.
func Migrate(pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return e.Wrap("storage.pg.Migrate.SetDialect", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		logger.Error("Migrations failed", slog.String("error", err.Error()))
		return e.Wrap("storage.pg.Migrate.Up", err)
	}

	logger.Info("Migrations applied")
	return nil
}
