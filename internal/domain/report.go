package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
	ReportRejected   ReportStatus = "rejected"
)

// Human returns the status label shown to subscribers ("in progress").
func (s ReportStatus) Human() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportInProgress, ReportResolved, ReportRejected:
		return true
	}
	return false
}

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
)

// Location is a GeoJSON-style point plus the human-readable address.
// Zero is a valid coordinate (equator, prime meridian), so only the
// range validations apply to Lng/Lat.
type Location struct {
	Lng     float64 `json:"lng" validate:"lng"`
	Lat     float64 `json:"lat" validate:"lat"`
	Address string  `json:"address" validate:"required"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Author    uuid.UUID `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	ID                 uuid.UUID      `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	Location           Location       `json:"location"`
	Priority           ReportPriority `json:"priority"`
	Status             ReportStatus   `json:"status"`
	Images             []string       `json:"images"`
	ReportedBy         uuid.UUID      `json:"reported_by"`
	AssignedTo         *uuid.UUID     `json:"assigned_to,omitempty"`
	AssignedDepartment string         `json:"assigned_department,omitempty"`
	Comments           []Comment      `json:"comments"`
	Subscribers        []uuid.UUID    `json:"subscribers,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ReportFilter narrows List queries. Department/ReportedBy are scope
// filters derived from the caller's role, the rest come from the query.
type ReportFilter struct {
	Status     ReportStatus
	Category   string
	Priority   ReportPriority
	Department string
	ReportedBy uuid.UUID
}
