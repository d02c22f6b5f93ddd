package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/service"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	self := uuid.New()
	other := uuid.New()

	cases := []struct {
		name    string
		action  service.Action
		caller  domain.Identity
		res     service.Resource
		allowed bool
	}{
		{
			name:    "admin passes everything",
			action:  service.ActionUpdateStatus,
			caller:  domain.Identity{ID: self, Role: domain.RoleAdmin},
			res:     service.Resource{Department: "Roads"},
			allowed: true,
		},
		{
			name:    "citizen views own report",
			action:  service.ActionViewReport,
			caller:  domain.Identity{ID: self, Role: domain.RoleCitizen},
			res:     service.Resource{ReportedBy: self},
			allowed: true,
		},
		{
			name:    "citizen blocked from foreign report",
			action:  service.ActionViewReport,
			caller:  domain.Identity{ID: self, Role: domain.RoleCitizen},
			res:     service.Resource{ReportedBy: other},
			allowed: false,
		},
		{
			name:    "staff views any report",
			action:  service.ActionViewReport,
			caller:  domain.Identity{ID: self, Role: domain.RoleDepartmentStaff, Department: "Roads"},
			res:     service.Resource{ReportedBy: other},
			allowed: true,
		},
		{
			name:    "staff updates own department",
			action:  service.ActionUpdateStatus,
			caller:  domain.Identity{ID: self, Role: domain.RoleDepartmentStaff, Department: "Roads"},
			res:     service.Resource{Department: "Roads"},
			allowed: true,
		},
		{
			name:    "staff blocked from other department",
			action:  service.ActionUpdateStatus,
			caller:  domain.Identity{ID: self, Role: domain.RoleDepartmentStaff, Department: "Roads"},
			res:     service.Resource{Department: "Water"},
			allowed: false,
		},
		{
			name:    "citizen never updates status",
			action:  service.ActionUpdateStatus,
			caller:  domain.Identity{ID: self, Role: domain.RoleCitizen},
			res:     service.Resource{},
			allowed: false,
		},
		{
			name:    "staff reads stats",
			action:  service.ActionViewStats,
			caller:  domain.Identity{ID: self, Role: domain.RoleDepartmentStaff, Department: "Roads"},
			res:     service.Resource{},
			allowed: true,
		},
		{
			name:    "citizen blocked from stats",
			action:  service.ActionViewStats,
			caller:  domain.Identity{ID: self, Role: domain.RoleCitizen},
			res:     service.Resource{},
			allowed: false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := service.Authorize(tc.action, tc.caller, tc.res)
			if tc.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, e.ErrForbidden) {
				t.Fatalf("expected ErrForbidden got %v", err)
			}
		})
	}
}
