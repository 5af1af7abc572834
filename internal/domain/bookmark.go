package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used wherever a bookmark's
// DateAdded is rendered or parsed.
const DateLayout = "2006-01-02"

// ErrDateOutOfRange is returned for dates DateLayout cannot render as a
// four digit year.
var ErrDateOutOfRange = errors.New("date out of range")

const (
	minYear = 1
	maxYear = 9999
)

// Bookmark is a bookmark independent of any storage engine.
//
// It is a transfer object: commands copy it into a persisted record
// and back, it never holds a reference to storage.
type Bookmark struct {
	// ID is the unique identifier. Zero means "not persisted yet".
	ID int64

	// Title is the human readable label.
	Title string

	// URL is the bookmarked address.
	// Example: http://www.example.com
	URL string

	// Notes is free text attached by the user.
	Notes string

	// DateAdded is the calendar day the bookmark was created.
	// Only the date part is meaningful.
	DateAdded time.Time
}

// Day truncates t to midnight UTC of the same calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", s, DateLayout, err)
	}
	return t, nil
}

// CheckDate reports whether t's calendar day survives a round trip
// through DateLayout.
func CheckDate(t time.Time) error {
	if y := Day(t).Year(); y < minYear || y > maxYear {
		return fmt.Errorf("year %d not in [%d, %d]: %w", y, minYear, maxYear, ErrDateOutOfRange)
	}
	return nil
}
