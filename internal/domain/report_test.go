package domain_test

import (
	"testing"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
)

func TestReportStatusHuman(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status domain.ReportStatus
		want   string
	}{
		{domain.ReportPending, "pending"},
		{domain.ReportInProgress, "in progress"},
		{domain.ReportResolved, "resolved"},
		{domain.ReportRejected, "rejected"},
	}

	for _, tc := range cases {
		if got := tc.status.Human(); got != tc.want {
			t.Fatalf("%s: expected %q got %q", tc.status, tc.want, got)
		}
	}
}

func TestReportStatusValid(t *testing.T) {
	t.Parallel()

	if !domain.ReportInProgress.Valid() {
		t.Fatalf("in_progress must be valid")
	}
	if domain.ReportStatus("archived").Valid() {
		t.Fatalf("archived must be invalid")
	}
	if domain.ReportStatus("").Valid() {
		t.Fatalf("empty status must be invalid")
	}
}
