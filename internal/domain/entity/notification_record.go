package entity

import "time"

// DisplayTimeLayout formats the wall-clock time shown next to a record.
const DisplayTimeLayout = "15:04:05"

// NotificationRecord is the in-session receipt of a foreground delivery.
type NotificationRecord struct {
	ID          int64     `json:"id"`           // Monotonic, time-of-arrival based identifier.
	Title       string    `json:"title"`        // Title with defaults applied.
	Body        string    `json:"body"`         // Body with defaults applied.
	DisplayTime string    `json:"display_time"` // Wall-clock time of arrival.
	ReceivedAt  time.Time `json:"received_at"`  // Full arrival timestamp.
}
