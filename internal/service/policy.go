package service

import (
	"fmt"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
)

type Action string

const (
	ActionViewReport   Action = "report:view"
	ActionUpdateStatus Action = "report:update_status"
	ActionViewStats    Action = "stats:view"
)

// Resource carries the scope attributes of the record being acted on.
type Resource struct {
	ReportedBy uuid.UUID
	Department string
}

// Authorize is the single role policy consulted by every operation.
// Admins pass everything; department staff are confined to their own
// department; citizens only reach their own reports.
func Authorize(action Action, caller domain.Identity, res Resource) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}

	switch action {
	case ActionViewReport:
		if caller.Role == domain.RoleDepartmentStaff {
			return nil
		}
		if caller.ID == res.ReportedBy {
			return nil
		}
	case ActionUpdateStatus:
		if caller.Role == domain.RoleDepartmentStaff && caller.Department == res.Department {
			return nil
		}
	case ActionViewStats:
		if caller.Role == domain.RoleDepartmentStaff {
			return nil
		}
	}

	return fmt.Errorf("policy.Authorize: %s as %s: %w", action, caller.Role, e.ErrForbidden)
}
