package domain

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Categories  []string   `json:"categories"`
	Head        *uuid.UUID `json:"head,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateDepartmentRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required"`
	Head        *string  `json:"head" validate:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Categories  []string `json:"categories" validate:"omitempty,min=1,dive,required"`
	Head        *string  `json:"head" validate:"omitempty,uuid"`
}
