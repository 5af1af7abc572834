package store

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record matches the requested ID.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when creating a record whose ID is taken.
	ErrConflict = errors.New("record already exists")
)

// Record is the persisted form of a bookmark.
// Engines own its lifecycle: ID assignment, uniqueness and deletion.
type Record struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	DateAdded time.Time `json:"date_added"`
}
