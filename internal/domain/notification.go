package domain

import "time"

// NotificationJob is one unit of work for the push provider: deliver
// Title/Body to the device behind Token.
type NotificationJob struct {
	Token      string    `json:"token"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
