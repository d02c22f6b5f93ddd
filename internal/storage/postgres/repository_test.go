//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(testPool, testLogger); err != nil {
		fmt.Println("Migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE report_subscriptions, report_comments, reports, departments, push_tokens CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedReport(t *testing.T, mutate func(*domain.Report)) *domain.Report {
	t.Helper()
	rep := &domain.Report{
		Title:       "Broken streetlight",
		Description: "dark for a week",
		Category:    "streetlight",
		Location:    domain.Location{Lng: 77.5946, Lat: 12.9716, Address: "MG Road"},
		ReportedBy:  uuid.New(),
	}
	if mutate != nil {
		mutate(rep)
	}
	if err := NewReportRepo(testPool, testLogger).Create(context.Background(), rep); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	return rep
}

func TestReportRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	rep := seedReport(t, nil)

	if rep.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if rep.Status != domain.ReportPending {
		t.Fatalf("expected status=%s got=%s", domain.ReportPending, rep.Status)
	}
	if rep.Priority != domain.PriorityMedium {
		t.Fatalf("expected priority=%s got=%s", domain.PriorityMedium, rep.Priority)
	}

	got, err := NewReportRepo(testPool, testLogger).Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != rep.Title || got.Location.Address != "MG Road" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Location.Lng != 77.5946 || got.Location.Lat != 12.9716 {
		t.Fatalf("coordinates mismatch: %+v", got.Location)
	}
	if len(got.Comments) != 0 || len(got.Subscribers) != 0 {
		t.Fatalf("expected empty comments and subscribers: %+v", got)
	}
}

func TestReportRepo_Get_Missing_NotFound(t *testing.T) {
	truncateAll(t)

	_, err := NewReportRepo(testPool, testLogger).Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestReportRepo_UpdateStatus_FirstInProgressWinsAssignment(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger)
	rep := seedReport(t, nil)

	first := uuid.New()
	second := uuid.New()

	got, err := repo.UpdateStatus(context.Background(), rep.ID, domain.ReportInProgress, first)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.AssignedTo == nil || *got.AssignedTo != first {
		t.Fatalf("expected assigned_to=%s got=%v", first, got.AssignedTo)
	}

	got, err = repo.UpdateStatus(context.Background(), rep.ID, domain.ReportInProgress, second)
	if err != nil {
		t.Fatalf("UpdateStatus second: %v", err)
	}
	if got.AssignedTo == nil || *got.AssignedTo != first {
		t.Fatalf("assignee must not change on later updates, got %v", got.AssignedTo)
	}

	got, err = repo.UpdateStatus(context.Background(), rep.ID, domain.ReportResolved, second)
	if err != nil {
		t.Fatalf("UpdateStatus resolve: %v", err)
	}
	if got.Status != domain.ReportResolved {
		t.Fatalf("expected status=%s got=%s", domain.ReportResolved, got.Status)
	}
	if got.AssignedTo == nil || *got.AssignedTo != first {
		t.Fatalf("assignee lost on resolve: %v", got.AssignedTo)
	}
}

func TestReportRepo_UpdateStatus_Missing_NotFound(t *testing.T) {
	truncateAll(t)

	_, err := NewReportRepo(testPool, testLogger).UpdateStatus(context.Background(), uuid.New(), domain.ReportResolved, uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestReportRepo_Subscribe_Idempotent(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger)
	rep := seedReport(t, nil)
	user := uuid.New()

	if err := repo.Subscribe(context.Background(), rep.ID, user); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := repo.Subscribe(context.Background(), rep.ID, user); err != nil {
		t.Fatalf("Subscribe twice: %v", err)
	}

	subs, err := repo.Subscribers(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Subscribers: %v", err)
	}
	if len(subs) != 1 || subs[0] != user {
		t.Fatalf("expected exactly one membership, got %v", subs)
	}

	ok, err := repo.IsSubscribed(context.Background(), rep.ID, user)
	if err != nil {
		t.Fatalf("IsSubscribed: %v", err)
	}
	if !ok {
		t.Fatalf("expected subscribed=true")
	}
}

func TestReportRepo_Subscribe_MissingReport_NotFound(t *testing.T) {
	truncateAll(t)

	err := NewReportRepo(testPool, testLogger).Subscribe(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestReportRepo_Unsubscribe_NonSubscriber_NoOp(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger)
	rep := seedReport(t, nil)

	if err := repo.Unsubscribe(context.Background(), rep.ID, uuid.New()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestReportRepo_AddComment_OrderedOldestFirst(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger)
	rep := seedReport(t, nil)
	author := uuid.New()

	older := &domain.Comment{Text: "first", Author: author, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := &domain.Comment{Text: "second", Author: author, CreatedAt: time.Now().UTC()}

	if err := repo.AddComment(context.Background(), rep.ID, newer); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if err := repo.AddComment(context.Background(), rep.ID, older); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Comments) != 2 {
		t.Fatalf("expected 2 comments got %d", len(got.Comments))
	}
	if got.Comments[0].Text != "first" || got.Comments[1].Text != "second" {
		t.Fatalf("expected oldest first, got %+v", got.Comments)
	}
}

func TestReportRepo_AddComment_MissingReport_NotFound(t *testing.T) {
	truncateAll(t)

	err := NewReportRepo(testPool, testLogger).AddComment(context.Background(), uuid.New(), &domain.Comment{Text: "x", Author: uuid.New()})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestReportRepo_List_FiltersAndCounts(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger)
	reporter := uuid.New()

	seedReport(t, func(r *domain.Report) { r.ReportedBy = reporter; r.Status = domain.ReportResolved })
	seedReport(t, func(r *domain.Report) { r.ReportedBy = reporter })
	seedReport(t, nil)

	reports, total, err := repo.List(context.Background(), domain.ReportFilter{ReportedBy: reporter}, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(reports) != 2 {
		t.Fatalf("expected 2 reports for reporter, got total=%d len=%d", total, len(reports))
	}

	reports, total, err = repo.List(context.Background(), domain.ReportFilter{Status: domain.ReportResolved}, 1, 10)
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if total != 1 || reports[0].Status != domain.ReportResolved {
		t.Fatalf("expected single resolved report, got total=%d", total)
	}
}

func TestGeoRepo_FindNearby_DistanceBoundary(t *testing.T) {
	truncateAll(t)

	// roughly 550m apart along the longitude at this latitude
	near := seedReport(t, func(r *domain.Report) {
		r.Location = domain.Location{Lng: 77.5996, Lat: 12.9716, Address: "Church Street"}
	})
	// roughly 20km away
	seedReport(t, func(r *domain.Report) {
		r.Location = domain.Location{Lng: 77.7800, Lat: 12.9716, Address: "Whitefield"}
	})

	repo := NewGeoRepo(testPool, testLogger)
	got, err := repo.FindNearby(context.Background(), 77.5946, 12.9716, 1000)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 1 || got[0].ID != near.ID {
		t.Fatalf("expected only the nearby report, got %d results", len(got))
	}
}

func TestGeoRepo_FindNearby_RejectsBadCoordinates(t *testing.T) {
	truncateAll(t)

	_, err := NewGeoRepo(testPool, testLogger).FindNearby(context.Background(), 200, 12.97, 1000)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates got %v", err)
	}
}

func TestStatsRepo_CountByField_DepartmentScope(t *testing.T) {
	truncateAll(t)

	seedReport(t, func(r *domain.Report) { r.AssignedDepartment = "Roads" })
	seedReport(t, func(r *domain.Report) { r.AssignedDepartment = "Roads"; r.Status = domain.ReportResolved })
	seedReport(t, func(r *domain.Report) { r.AssignedDepartment = "Water" })

	repo := NewStatsRepo(testPool, testLogger)

	all, err := repo.CountByField(context.Background(), domain.StatByStatus, "")
	if err != nil {
		t.Fatalf("CountByField: %v", err)
	}
	var totalAll int64
	for _, c := range all {
		totalAll += c.Count
	}
	if totalAll != 3 {
		t.Fatalf("expected 3 reports counted, got %d", totalAll)
	}

	roads, err := repo.CountByField(context.Background(), domain.StatByStatus, "Roads")
	if err != nil {
		t.Fatalf("CountByField scoped: %v", err)
	}
	var totalRoads int64
	for _, c := range roads {
		totalRoads += c.Count
	}
	if totalRoads != 2 {
		t.Fatalf("expected 2 reports for Roads, got %d", totalRoads)
	}
}

func TestStatsRepo_DailyCounts_WindowIncludesToday(t *testing.T) {
	truncateAll(t)

	seedReport(t, nil)
	seedReport(t, nil)

	repo := NewStatsRepo(testPool, testLogger)
	daily, err := repo.DailyCounts(context.Background(), "", 30)
	if err != nil {
		t.Fatalf("DailyCounts: %v", err)
	}
	if len(daily) != 1 || daily[0].Count != 2 {
		t.Fatalf("expected one bucket with 2 reports, got %+v", daily)
	}
}

func TestDepartmentRepo_FindNameByCategory_AlphabeticalFirst(t *testing.T) {
	truncateAll(t)

	repo := NewDepartmentRepo(testPool, testLogger)

	for _, name := range []string{"Sanitation", "Electrical"} {
		dept := &domain.Department{
			ID:          uuid.New(),
			Name:        name,
			Description: "handles streetlights",
			Categories:  []string{"streetlight"},
		}
		if err := repo.Create(context.Background(), dept); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	got, err := repo.FindNameByCategory(context.Background(), "streetlight")
	if err != nil {
		t.Fatalf("FindNameByCategory: %v", err)
	}
	if got != "Electrical" {
		t.Fatalf("expected Electrical got %q", got)
	}

	if _, err := repo.FindNameByCategory(context.Background(), "unmapped"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestDepartmentRepo_DuplicateName_UniqueViolation(t *testing.T) {
	truncateAll(t)

	repo := NewDepartmentRepo(testPool, testLogger)
	dept := &domain.Department{ID: uuid.New(), Name: "Roads", Description: "x", Categories: []string{"pothole"}}
	if err := repo.Create(context.Background(), dept); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.Department{ID: uuid.New(), Name: "Roads", Description: "y", Categories: []string{"other"}}
	if err := repo.Create(context.Background(), dup); !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation got %v", err)
	}
}

func TestPushTokenRepo_SaveUpsertsAndResolves(t *testing.T) {
	truncateAll(t)

	repo := NewPushTokenRepo(testPool, testLogger)
	user := uuid.New()

	if err := repo.Save(context.Background(), user, "tok-old"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(context.Background(), user, "tok-new"); err != nil {
		t.Fatalf("Save upsert: %v", err)
	}

	tokens, err := repo.TokensFor(context.Background(), []uuid.UUID{user, uuid.New()})
	if err != nil {
		t.Fatalf("TokensFor: %v", err)
	}
	if len(tokens) != 1 || tokens[0] != "tok-new" {
		t.Fatalf("expected single fresh token, got %v", tokens)
	}
}
