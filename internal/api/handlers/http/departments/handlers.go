package departments

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codewithsreyash/CivicSetu/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Directory interface {
	Create(ctx context.Context, req domain.CreateDepartmentRequest) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

type Handler struct {
	logger    *slog.Logger
	Directory Directory
}

func NewHandler(logger *slog.Logger, directory Directory) *Handler {
	return &Handler{logger: logger, Directory: directory}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DepartmentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	dept, err := h.Directory.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("department created", slog.String("id", dept.ID.String()), slog.String("name", dept.Name))
	h.writeJSON(w, http.StatusCreated, dept)
}

func (h *Handler) DepartmentList(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Directory.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, depts)
}

func (h *Handler) DepartmentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.departmentID(w, r)
	if !ok {
		return
	}

	dept, err := h.Directory.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dept)
}

func (h *Handler) DepartmentUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.departmentID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	dept, err := h.Directory.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dept)
}

func (h *Handler) DepartmentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.departmentID(w, r)
	if !ok {
		return
	}

	if err := h.Directory.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Department removed"})
}

func (h *Handler) DepartmentCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Directory.Categories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) departmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
