package models

import "time"

// ActivityLog is an append-only audit record. The stored collection is
// trimmed to the most recent 500 entries after every append.
type ActivityLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
