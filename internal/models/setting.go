package models

type Settings struct {
	ShowLeaderboard bool `json:"showLeaderboard"`
}

// UpdateSettingsRequest is a partial merge over the stored settings.
type UpdateSettingsRequest struct {
	ShowLeaderboard *bool `json:"showLeaderboard,omitempty"`
}

// SearchResult holds the cross-entity search hits, capped at five per
// category.
type SearchResult struct {
	Rooms    []Room    `json:"rooms"`
	Users    []User    `json:"users"`
	Payments []Payment `json:"payments"`
}
