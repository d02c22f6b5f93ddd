package reports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/reports"
	mock_reports "github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/reports/mocks"
	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/middleware"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(ctrl *gomock.Controller) (*reports.Handler, *mock_reports.MockReportLifecycle, *mock_reports.MockSubscriptions, *mock_reports.MockStatsComputer) {
	lifecycle := mock_reports.NewMockReportLifecycle(ctrl)
	subs := mock_reports.NewMockSubscriptions(ctrl)
	stats := mock_reports.NewMockStatsComputer(ctrl)
	return reports.NewHandler(newTestLogger(), lifecycle, subs, stats), lifecycle, subs, stats
}

func withCaller(r *http.Request, caller domain.Identity) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), caller))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestReportCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reqBody := `{"title":"Pothole","description":"deep one","category":"pothole","location":{"lng":77.59,"lat":12.97,"address":"MG Road"}}`
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewBufferString(reqBody)), caller)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	lifecycle.EXPECT().
		Create(gomock.Any(), caller, domain.CreateReportRequest{
			Title:       "Pothole",
			Description: "deep one",
			Category:    "pothole",
			Location:    domain.Location{Lng: 77.59, Lat: 12.97, Address: "MG Road"},
		}).
		Return(&domain.Report{ID: wantID, Title: "Pothole", Status: domain.ReportPending}, nil).
		Times(1)

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Report](t, rr)
	if got.ID != wantID {
		t.Fatalf("expected id=%s got=%s", wantID, got.ID)
	}
}

func TestReportCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewBufferString("{not json")), domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen})
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportCreate_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestReportGet_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reportID := uuid.New()

	lifecycle.EXPECT().
		Get(gomock.Any(), caller, reportID).
		Return(nil, e.ErrForbidden).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/"+reportID.String(), nil), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestReportGet_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/abc", nil), domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen})
	req = addChiURLParam(req, "id", "abc")
	rr := httptest.NewRecorder()

	h.ReportGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportUpdateStatus_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleAdmin}
	reportID := uuid.New()

	lifecycle.EXPECT().
		UpdateStatus(gomock.Any(), caller, reportID, domain.ReportResolved).
		Return(nil, e.ErrNotFound).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/reports/"+reportID.String()+"/status", bytes.NewBufferString(`{"status":"resolved"}`)), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.ReportUpdateStatus(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestReportList_PassesQueryFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleAdmin}

	lifecycle.EXPECT().
		List(gomock.Any(), caller, domain.ListReportsRequest{
			Status:   domain.ReportPending,
			Category: "pothole",
			Page:     2,
			Limit:    20,
		}).
		Return(&domain.ListReportsResponse{Reports: []*domain.Report{}, Page: 2, Pages: 3, Total: 41}, nil).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports?status=pending&category=pothole&page=2&limit=20", nil), caller)
	rr := httptest.NewRecorder()

	h.ReportList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ListReportsResponse](t, rr)
	if got.Total != 41 || got.Pages != 3 {
		t.Fatalf("unexpected paging: %+v", got)
	}
}

func TestReportList_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports?status=archived", nil), domain.Identity{ID: uuid.New(), Role: domain.RoleAdmin})
	rr := httptest.NewRecorder()

	h.ReportList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportNearby_MissingParams_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/near?longitude=77.59", nil), domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen})
	rr := httptest.NewRecorder()

	h.ReportNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportNearby_NonNumericParams_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/near?longitude=east&latitude=north", nil), domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen})
	rr := httptest.NewRecorder()

	h.ReportNearby(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportNearby_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	lifecycle.EXPECT().
		Nearby(gomock.Any(), domain.NearbyRequest{Lng: 77.59, Lat: 12.97, MaxDistance: 1000}).
		Return([]*domain.Report{{ID: uuid.New()}}, nil).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/near?longitude=77.59&latitude=12.97&maxDistance=1000", nil), domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen})
	rr := httptest.NewRecorder()

	h.ReportNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[[]domain.Report](t, rr)
	if len(got) != 1 {
		t.Fatalf("expected 1 report got %d", len(got))
	}
}

func TestReportStats_RelabelsEmptyKeys(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, stats := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleAdmin}
	stats.EXPECT().
		Compute(gomock.Any(), caller).
		Return(&domain.ReportStats{
			ByStatus:   []domain.StatCount{{Value: "pending", Count: 2}},
			ByCategory: []domain.StatCount{{Value: "", Count: 1}},
			ByPriority: []domain.StatCount{},
			Daily:      []domain.DailyCount{},
		}, nil).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/stats", nil), caller)
	rr := httptest.NewRecorder()

	h.ReportStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.ReportStats](t, rr)
	if len(got.ByCategory) != 1 || got.ByCategory[0].Value != "unknown" {
		t.Fatalf("expected empty category relabeled as unknown, got %+v", got.ByCategory)
	}
}

func TestSubscribe_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, subs, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reportID := uuid.New()

	subs.EXPECT().Subscribe(gomock.Any(), caller, reportID).Return(nil).Times(1)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/reports/"+reportID.String()+"/subscribe", nil), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.Subscribe(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestSubscribe_ReportMissing_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, subs, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reportID := uuid.New()

	subs.EXPECT().Subscribe(gomock.Any(), caller, reportID).Return(e.ErrNotFound).Times(1)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/reports/"+reportID.String()+"/subscribe", nil), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.Subscribe(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestSubscriptionStatus_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, subs, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reportID := uuid.New()

	subs.EXPECT().Status(gomock.Any(), caller, reportID).Return(true, nil).Times(1)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/reports/"+reportID.String()+"/subscription", nil), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.SubscriptionStatus(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[domain.SubscriptionStatusResponse](t, rr)
	if !got.Subscribed {
		t.Fatalf("expected is_subscribed=true, body=%s", rr.Body.String())
	}
}

func TestRegisterToken_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, subs, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	subs.EXPECT().RegisterToken(gomock.Any(), caller, "ExponentPushToken[abc]").Return(nil).Times(1)

	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/notifications/token", bytes.NewBufferString(`{"token":"ExponentPushToken[abc]"}`)), caller)
	rr := httptest.NewRecorder()

	h.RegisterToken(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestReportAddComment_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, lifecycle, _, _ := newHandler(ctrl)

	caller := domain.Identity{ID: uuid.New(), Role: domain.RoleCitizen}
	reportID := uuid.New()

	lifecycle.EXPECT().
		AddComment(gomock.Any(), caller, reportID, "any updates?").
		Return(&domain.Report{ID: reportID, Comments: []domain.Comment{{Text: "any updates?"}}}, nil).
		Times(1)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/reports/"+reportID.String()+"/comments", bytes.NewBufferString(`{"text":"any updates?"}`)), caller)
	req = addChiURLParam(req, "id", reportID.String())
	rr := httptest.NewRecorder()

	h.ReportAddComment(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}
