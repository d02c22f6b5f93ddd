package domain

import "github.com/google/uuid"

type Role string

const (
	RoleCitizen         Role = "citizen"
	RoleDepartmentStaff Role = "department_staff"
	RoleAdmin           Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleDepartmentStaff, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller as supplied by the gateway.
// Department is set only for department_staff.
type Identity struct {
	ID         uuid.UUID `json:"id"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
}
