package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// AddBookmarkCommand inserts a new bookmark.
type AddBookmarkCommand struct {
	repo   Repository
	logger logger.Logger
}

// NewAddBookmarkCommand creates an add command
func NewAddBookmarkCommand(repo Repository, log logger.Logger) *AddBookmarkCommand {
	return &AddBookmarkCommand{repo: repo, logger: log}
}

// Execute stores b. A caller-supplied ID is kept, a zero ID is assigned by
// the repository. The returned bookmark carries the stored ID.
// DateAdded must fall in years 1 to 9999.
func (c *AddBookmarkCommand) Execute(ctx context.Context, b domain.Bookmark) (domain.Bookmark, error) {
	if err := domain.CheckDate(b.DateAdded); err != nil {
		return domain.Bookmark{}, fmt.Errorf("add bookmark: %w", err)
	}

	rec, err := c.repo.Create(ctx, toRecord(b))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.Bookmark{}, fmt.Errorf("add bookmark %d: %w", b.ID, ErrBookmarkExists)
		}
		return domain.Bookmark{}, fmt.Errorf("add bookmark: %w", err)
	}

	c.logger.Debug("bookmark added",
		logger.Int64("id", rec.ID),
		logger.String("url", rec.URL))

	return toDomain(rec), nil
}
