package store

import (
	"sort"
	"strings"

	"github.com/MrSnakeDoc/barky/internal/domain"
)

// SortRecords orders records ascending on the given key, ties broken by ID.
// Engines without server-side ordering use it to honour List semantics.
func SortRecords(records []Record, order domain.OrderBy) {
	less := func(a, b Record) bool { return a.ID < b.ID }

	switch order {
	case domain.OrderByTitle:
		less = func(a, b Record) bool {
			if c := strings.Compare(a.Title, b.Title); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		}
	case domain.OrderByDateAdded, "":
		less = func(a, b Record) bool {
			if !a.DateAdded.Equal(b.DateAdded) {
				return a.DateAdded.Before(b.DateAdded)
			}
			return a.ID < b.ID
		}
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}
