package seed

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/barky/internal/domain"
)

// Mapper converts seed entries to domain bookmarks
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a new seed mapper. now supplies the date for entries
// without date_added; nil means time.Now.
func NewMapper(now func() time.Time) *Mapper {
	if now == nil {
		now = time.Now
	}
	return &Mapper{now: now}
}

// MapBookmarks validates every entry and converts it. The first invalid
// entry aborts the whole mapping, so nothing is persisted from a file that
// fails validation.
func (m *Mapper) MapBookmarks(file File) ([]domain.Bookmark, error) {
	bookmarks := make([]domain.Bookmark, 0, len(file.Bookmarks))
	seen := make(map[int64]bool, len(file.Bookmarks))
	today := domain.Day(m.now())

	for i, entry := range file.Bookmarks {
		href := strings.TrimSpace(entry.URL)
		if href == "" {
			return nil, fmt.Errorf("entry %d: url is required", i)
		}
		if _, err := url.ParseRequestURI(href); err != nil {
			return nil, fmt.Errorf("entry %d: invalid url %q: %w", i, href, err)
		}

		if entry.ID < 0 {
			return nil, fmt.Errorf("entry %d: id must not be negative", i)
		}
		if entry.ID != 0 {
			if seen[entry.ID] {
				return nil, fmt.Errorf("entry %d: duplicate id %d", i, entry.ID)
			}
			seen[entry.ID] = true
		}

		added := today
		if strings.TrimSpace(entry.DateAdded) != "" {
			d, err := domain.ParseDate(entry.DateAdded)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			added = d
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = href
		}

		bookmarks = append(bookmarks, domain.Bookmark{
			ID:        entry.ID,
			Title:     title,
			URL:       href,
			Notes:     entry.Notes,
			DateAdded: added,
		})
	}

	if len(bookmarks) == 0 {
		return nil, fmt.Errorf("no bookmarks found in seed file")
	}

	return bookmarks, nil
}
