package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// EditBookmarkCommand overwrites an existing bookmark.
type EditBookmarkCommand struct {
	repo   Repository
	logger logger.Logger
}

// NewEditBookmarkCommand creates an edit command
func NewEditBookmarkCommand(repo Repository, log logger.Logger) *EditBookmarkCommand {
	return &EditBookmarkCommand{repo: repo, logger: log}
}

// Execute replaces title, URL, notes and date added of the bookmark whose
// ID equals b.ID. It never creates a bookmark: a missing ID yields
// ErrBookmarkNotFound.
func (c *EditBookmarkCommand) Execute(ctx context.Context, b domain.Bookmark) error {
	if err := domain.CheckDate(b.DateAdded); err != nil {
		return fmt.Errorf("edit bookmark %d: %w", b.ID, err)
	}

	if err := c.repo.Update(ctx, toRecord(b)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("edit bookmark %d: %w", b.ID, ErrBookmarkNotFound)
		}
		return fmt.Errorf("edit bookmark %d: %w", b.ID, err)
	}

	c.logger.Debug("bookmark edited", logger.Int64("id", b.ID))
	return nil
}
