package domain

import "time"

// Notification is one entry in the persisted notification log.
// Newest entries sit at the front of the slice.
type Notification struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Kind      string    `json:"kind"` // "welcome", "activity", "day", "badge"
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
