package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/api"
	"github.com/codewithsreyash/CivicSetu/internal/config"
	"github.com/codewithsreyash/CivicSetu/internal/redis"
	"github.com/codewithsreyash/CivicSetu/internal/service"
	"github.com/codewithsreyash/CivicSetu/internal/storage/postgres"
	"github.com/codewithsreyash/CivicSetu/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	PushSender *service.PushSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notificationQueue := redis.NewNotificationQueue(redisClient.Client, "notifications:queue")
	directoryCache := redis.NewDirectoryCache(redisClient)

	departmentSvc := service.NewDepartmentService(storage.Departments, directoryCache, logger)
	dispatchSvc := service.NewDispatchService(storage.Reports, storage.Tokens, notificationQueue, logger)
	reportSvc := service.NewReportService(storage.Reports, storage.Geo, departmentSvc, dispatchSvc, logger)
	subscriptionSvc := service.NewSubscriptionService(storage.Reports, storage.Tokens, logger)
	statsSvc := service.NewStatsService(storage.Stat)

	srv := service.NewService(reportSvc, subscriptionSvc, statsSvc, departmentSvc)

	httpServer := api.NewServer(ctx, cfg, logger, srv)
	logger.Info("Initialized server")

	var sender *service.PushSender
	if !cfg.Push.Disabled {
		sender = service.NewPushSender(logger, cfg.Push, notificationQueue)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		PushSender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
