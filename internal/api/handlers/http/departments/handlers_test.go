package departments_test

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

	"github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/departments"
	mock_departments "github.com/codewithsreyash/CivicSetu/internal/api/handlers/http/departments/mocks"
	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
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

func TestDepartmentCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	wantID := uuid.New()
	directory.EXPECT().
		Create(gomock.Any(), domain.CreateDepartmentRequest{
			Name:        "Roads",
			Description: "Road maintenance",
			Categories:  []string{"pothole"},
		}).
		Return(&domain.Department{ID: wantID, Name: "Roads"}, nil).
		Times(1)

	reqBody := `{"name":"Roads","description":"Road maintenance","categories":["pothole"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.DepartmentCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Department](t, rr)
	if got.ID != wantID {
		t.Fatalf("expected id=%s got=%s", wantID, got.ID)
	}
}

func TestDepartmentCreate_DuplicateName_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	directory.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrUniqueViolation).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewBufferString(`{"name":"Roads","description":"dup","categories":["pothole"]}`))
	rr := httptest.NewRecorder()

	h.DepartmentCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestDepartmentCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := departments.NewHandler(newTestLogger(), mock_departments.NewMockDirectory(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewBufferString("{oops"))
	rr := httptest.NewRecorder()

	h.DepartmentCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestDepartmentGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	id := uuid.New()
	directory.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/departments/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.DepartmentGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestDepartmentList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	directory.EXPECT().
		List(gomock.Any()).
		Return([]*domain.Department{{ID: uuid.New(), Name: "Roads"}, {ID: uuid.New(), Name: "Water"}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	rr := httptest.NewRecorder()

	h.DepartmentList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[[]domain.Department](t, rr)
	if len(got) != 2 {
		t.Fatalf("expected 2 departments got %d", len(got))
	}
}

func TestDepartmentUpdate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	id := uuid.New()
	name := "Roads and Bridges"
	directory.EXPECT().
		Update(gomock.Any(), id, domain.UpdateDepartmentRequest{Name: &name}).
		Return(&domain.Department{ID: id, Name: name}, nil).
		Times(1)

	req := addChiURLParam(
		httptest.NewRequest(http.MethodPut, "/api/departments/"+id.String(), bytes.NewBufferString(`{"name":"Roads and Bridges"}`)),
		"id", id.String(),
	)
	rr := httptest.NewRecorder()

	h.DepartmentUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Department](t, rr)
	if got.Name != name {
		t.Fatalf("expected name=%q got=%q", name, got.Name)
	}
}

func TestDepartmentDelete_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := departments.NewHandler(newTestLogger(), mock_departments.NewMockDirectory(ctrl))

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/departments/xyz", nil), "id", "xyz")
	rr := httptest.NewRecorder()

	h.DepartmentDelete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestDepartmentCategories_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mock_departments.NewMockDirectory(ctrl)
	h := departments.NewHandler(newTestLogger(), directory)

	directory.EXPECT().
		Categories(gomock.Any()).
		Return([]string{"pothole", "streetlight", "water_leak"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/departments/categories", nil)
	rr := httptest.NewRecorder()

	h.DepartmentCategories(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[[]string](t, rr)
	if len(got) != 3 {
		t.Fatalf("expected 3 categories got %d", len(got))
	}
}
