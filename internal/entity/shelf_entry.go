package entity

import "time"

// Shelf entry statuses. Freely transitionable in any direction; there is
// no forced ordering between them.
const (
	StatusWantToRead       = "WANT_TO_READ"
	StatusCurrentlyReading = "CURRENTLY_READING"
	StatusRead             = "READ"
)

// ValidStatus reports whether s is one of the three shelf statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusRead:
		return true
	default:
		return false
	}
}

// ShelfEntry is one tracked book on a user's shelf. It references the
// catalog item by its external id only; the catalog is never stored
// locally.
type ShelfEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GoogleID  string    `json:"googleId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ImageURL  *string   `json:"imageUrl"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
