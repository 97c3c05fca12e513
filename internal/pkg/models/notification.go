package models

import (
	"time"
)

// Notification is a fire-and-forget message for the external notification
// dispatcher. Delivery failures are logged by the publisher and never
// propagated to the operation that triggered them.
type Notification struct {
	UserID    string                 `json:"user_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}
