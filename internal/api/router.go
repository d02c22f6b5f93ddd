package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/departments"
	"github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/reports"
	"github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/system"
	"github.com/codewithsreyash/CivicSetu/internal/config"
	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/middleware"
	"github.com/codewithsreyash/CivicSetu/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	reportHandler := reports.NewHandler(logger, svc.Reports, svc.Subscriptions, svc.Stats)
	departmentHandler := departments.NewHandler(logger, svc.Departments)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(ctx, reportHandler, departmentHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, reportHandler *reports.Handler, departmentHandler *departments.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Route("/reports", func(rr chi.Router) {
			rr.Use(middleware.Identity(logger))
			rr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			rr.Post("/", reportHandler.ReportCreate)
			rr.Get("/", reportHandler.ReportList)
			rr.Get("/near", reportHandler.ReportNearby)

			rr.With(middleware.RequireRole(domain.RoleAdmin, domain.RoleDepartmentStaff)).
				Get("/stats", reportHandler.ReportStats)

			rr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", reportHandler.ReportGet)
				ir.Post("/comments", reportHandler.ReportAddComment)
				ir.Post("/subscribe", reportHandler.Subscribe)
				ir.Post("/unsubscribe", reportHandler.Unsubscribe)
				ir.Get("/subscription-status", reportHandler.SubscriptionStatus)

				ir.With(middleware.RequireRole(domain.RoleAdmin, domain.RoleDepartmentStaff)).
					Put("/status", reportHandler.ReportUpdateStatus)
			})
		})

		api.Route("/departments", func(dr chi.Router) {
			// categories feed the citizen app's report form, no identity needed
			dr.Get("/categories", departmentHandler.DepartmentCategories)

			dr.Group(func(pr chi.Router) {
				pr.Use(middleware.Identity(logger))

				pr.Get("/", departmentHandler.DepartmentList)
				pr.Get("/{id}", departmentHandler.DepartmentGet)

				pr.Group(func(ar chi.Router) {
					ar.Use(middleware.RequireRole(domain.RoleAdmin))

					ar.Post("/", departmentHandler.DepartmentCreate)
					ar.Put("/{id}", departmentHandler.DepartmentUpdate)
					ar.Delete("/{id}", departmentHandler.DepartmentDelete)
				})
			})
		})

		api.Route("/notifications", func(nr chi.Router) {
			nr.Use(middleware.Identity(logger))
			nr.Put("/token", reportHandler.RegisterToken)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
