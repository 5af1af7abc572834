package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// GetBookmarkCommand looks a bookmark up by ID.
type GetBookmarkCommand struct {
	repo   Repository
	logger logger.Logger
}

// NewGetBookmarkCommand creates a get command
func NewGetBookmarkCommand(repo Repository, log logger.Logger) *GetBookmarkCommand {
	return &GetBookmarkCommand{repo: repo, logger: log}
}

// Execute returns the bookmark with the given ID, or ErrBookmarkNotFound.
func (c *GetBookmarkCommand) Execute(ctx context.Context, id int64) (domain.Bookmark, error) {
	rec, err := c.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Bookmark{}, fmt.Errorf("get bookmark %d: %w", id, ErrBookmarkNotFound)
		}
		return domain.Bookmark{}, fmt.Errorf("get bookmark %d: %w", id, err)
	}
	return toDomain(rec), nil
}
