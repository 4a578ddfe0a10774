package models

import "time"

// Item belongs to exactly one collection. Data holds the custom-field
// payload; it is treated as an atomic blob throughout the sync engine and
// never inspected below whole-record granularity.
type Item struct {
	ID           string         `json:"id"`
	CollectionID string         `json:"collectionId"`
	Title        string         `json:"title"`
	Notes        string         `json:"notes,omitempty"`
	Rating       float64        `json:"rating,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
	PhotoPath    string         `json:"photoPath,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
}

// EntityID returns the item identifier.
func (i Item) EntityID() string { return i.ID }

// ModTime returns the parsed last-modified instant. A malformed timestamp
// compares as the zero time, which sorts oldest.
func (i Item) ModTime() time.Time {
	t, _ := ParseTimestamp(i.UpdatedAt)
	return t
}
