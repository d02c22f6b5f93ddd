package domain

type CreateReportRequest struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Location    Location       `json:"location" validate:"required"`
	Priority    ReportPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Images      []string       `json:"images" validate:"max=5"`
}

type UpdateStatusRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=pending in_progress resolved rejected"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type ListReportsRequest struct {
	Status   ReportStatus   `json:"status" validate:"omitempty,oneof=pending in_progress resolved rejected"`
	Category string         `json:"category"`
	Priority ReportPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Page     int            `json:"page" validate:"min=1"`
	Limit    int            `json:"limit" validate:"min=1,max=100"`
}

type ListReportsResponse struct {
	Reports []*Report `json:"reports"`
	Page    int       `json:"page"`
	Pages   int       `json:"pages"`
	Total   int64     `json:"total"`
}

type NearbyRequest struct {
	Lng         float64 `json:"lng" validate:"lng"`
	Lat         float64 `json:"lat" validate:"lat"`
	MaxDistance float64 `json:"max_distance" validate:"omitempty,min=1"` // meters
}

type SubscriptionStatusResponse struct {
	Subscribed bool `json:"is_subscribed"`
}

type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
