package domain

import (
	"fmt"
	"strings"
)

// OrderBy selects the key a bookmark listing is sorted on.
// Listings are always ascending, ties are broken by ID.
type OrderBy string

const (
	OrderByDateAdded OrderBy = "date_added"
	OrderByTitle     OrderBy = "title"
)

// DefaultOrderBy is used when no ordering is requested.
const DefaultOrderBy = OrderByDateAdded

// ParseOrderBy maps user input to an OrderBy. Empty input yields the default.
func ParseOrderBy(s string) (OrderBy, error) {
	switch OrderBy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultOrderBy, nil
	case OrderByDateAdded:
		return OrderByDateAdded, nil
	case OrderByTitle:
		return OrderByTitle, nil
	default:
		return "", fmt.Errorf("unknown order key %q (want %q or %q)", s, OrderByDateAdded, OrderByTitle)
	}
}
