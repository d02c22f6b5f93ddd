package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
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

type StatsComputer interface {
	Compute(ctx context.Context, caller domain.Identity) (*domain.ReportStats, error)
}

type Handler struct {
	logger        *slog.Logger
	Reports       ReportLifecycle
	Subscriptions Subscriptions
	Stats         StatsComputer
}

func NewHandler(logger *slog.Logger, reports ReportLifecycle, subscriptions Subscriptions, stats StatsComputer) *Handler {
	return &Handler{
		logger:        logger,
		Reports:       reports,
		Subscriptions: subscriptions,
		Stats:         stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	return caller, ok
}

func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Reports.Create(r.Context(), caller, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("category", report.Category),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	req := domain.ListReportsRequest{
		Status:   domain.ReportStatus(q.Get("status")),
		Category: q.Get("category"),
		Priority: domain.ReportPriority(q.Get("priority")),
		Page:     parseInt(q.Get("page"), 1),
		Limit:    parseInt(q.Get("limit"), 10),
	}
	if req.Status != "" && !req.Status.Valid() {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	resp, err := h.Reports.List(r.Context(), caller, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("reports listed", slog.Int("count", len(resp.Reports)), slog.Int64("total", resp.Total))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ReportGet(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Get(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) ReportUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Reports.UpdateStatus(r.Context(), caller, id, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status updated",
		slog.String("id", id.String()),
		slog.String("status", string(req.Status)),
	)
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) ReportAddComment(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Reports.AddComment(r.Context(), caller, id, req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ReportNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if _, ok := h.caller(w, r); !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("longitude") == "" || q.Get("latitude") == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "longitude and latitude are required"})
		return
	}

	lng, errLng := strconv.ParseFloat(q.Get("longitude"), 64)
	lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
	if errLng != nil || errLat != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "longitude and latitude must be numbers"})
		return
	}

	req := domain.NearbyRequest{
		Lng:         lng,
		Lat:         lat,
		MaxDistance: float64(parseInt(q.Get("maxDistance"), 0)),
	}

	reports, err := h.Reports.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("nearby reports", slog.Int("count", len(reports)))
	h.writeJSON(w, http.StatusOK, reports)
}

func (h *Handler) ReportStats(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	stats, err := h.Stats.Compute(r.Context(), caller)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, presentStats(stats))
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	if err := h.Subscriptions.Subscribe(r.Context(), caller, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscribed to report updates"})
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	if err := h.Subscriptions.Unsubscribe(r.Context(), caller, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Unsubscribed from report updates"})
}

func (h *Handler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	subscribed, err := h.Subscriptions.Status(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.SubscriptionStatusResponse{Subscribed: subscribed})
}

func (h *Handler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req domain.RegisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Subscriptions.RegisterToken(r.Context(), caller, req.Token); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Push token registered"})
}

func (h *Handler) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
