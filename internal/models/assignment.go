package models

// RoomAssignment grants a non-admin user visibility of a room. The grant is
// active only while IsEnabled is true; toggling flips the flag, or recreates
// the record enabled if it does not exist.
type RoomAssignment struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	RoomID    string `json:"roomId"`
	IsEnabled bool   `json:"isEnabled"`
}

// ToggleAssignmentRequest represents the request body for toggling a grant
type ToggleAssignmentRequest struct {
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
}
