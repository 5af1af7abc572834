package commands

import (
	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// toRecord converts a domain bookmark into its persisted form.
// DateAdded is reduced to its calendar day.
func toRecord(b domain.Bookmark) store.Record {
	return store.Record{
		ID:        b.ID,
		Title:     b.Title,
		URL:       b.URL,
		Notes:     b.Notes,
		DateAdded: domain.Day(b.DateAdded),
	}
}

// toDomain rebuilds a domain bookmark from a stored record.
func toDomain(r store.Record) domain.Bookmark {
	return domain.Bookmark{
		ID:        r.ID,
		Title:     r.Title,
		URL:       r.URL,
		Notes:     r.Notes,
		DateAdded: r.DateAdded,
	}
}

func toDomainList(records []store.Record) []domain.Bookmark {
	out := make([]domain.Bookmark, 0, len(records))
	for _, r := range records {
		out = append(out, toDomain(r))
	}
	return out
}
