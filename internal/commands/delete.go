package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// DeleteBookmarkCommand removes a bookmark.
type DeleteBookmarkCommand struct {
	repo   Repository
	logger logger.Logger
}

// NewDeleteBookmarkCommand creates a delete command
func NewDeleteBookmarkCommand(repo Repository, log logger.Logger) *DeleteBookmarkCommand {
	return &DeleteBookmarkCommand{repo: repo, logger: log}
}

// Execute deletes the bookmark with b.ID. Deleting an ID that does not
// exist succeeds without changing anything.
func (c *DeleteBookmarkCommand) Execute(ctx context.Context, b domain.Bookmark) error {
	err := c.repo.Delete(ctx, b.ID)
	switch {
	case err == nil:
		c.logger.Debug("bookmark deleted", logger.Int64("id", b.ID))
		return nil
	case errors.Is(err, store.ErrNotFound):
		c.logger.Debug("delete skipped, bookmark not found", logger.Int64("id", b.ID))
		return nil
	default:
		return fmt.Errorf("delete bookmark %d: %w", b.ID, err)
	}
}
