package reports

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// presentStats renders never-set grouping keys as "unknown"; the
// aggregator itself reports the raw (possibly empty) value.
func presentStats(stats *domain.ReportStats) *domain.ReportStats {
	out := &domain.ReportStats{
		ByStatus:   relabelUnknown(stats.ByStatus),
		ByCategory: relabelUnknown(stats.ByCategory),
		ByPriority: relabelUnknown(stats.ByPriority),
		Daily:      stats.Daily,
	}
	return out
}

func relabelUnknown(counts []domain.StatCount) []domain.StatCount {
	out := make([]domain.StatCount, len(counts))
	for i, c := range counts {
		if c.Value == "" {
			c.Value = "unknown"
		}
		out[i] = c
	}
	return out
}
