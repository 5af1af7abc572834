package commands

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/logger"
)

// ListBookmarksCommand returns every bookmark in a fixed order.
type ListBookmarksCommand struct {
	repo    Repository
	logger  logger.Logger
	orderBy domain.OrderBy
}

// ListOption configures a ListBookmarksCommand.
type ListOption func(*ListBookmarksCommand)

// WithOrderBy sorts the listing on the given key instead of date added.
func WithOrderBy(order domain.OrderBy) ListOption {
	return func(c *ListBookmarksCommand) {
		c.orderBy = order
	}
}

// NewListBookmarksCommand creates a list command ordered by date added
// unless WithOrderBy says otherwise.
func NewListBookmarksCommand(repo Repository, log logger.Logger, opts ...ListOption) *ListBookmarksCommand {
	c := &ListBookmarksCommand{repo: repo, logger: log, orderBy: domain.DefaultOrderBy}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute returns all bookmarks ascending on the configured key, ties broken
// by ID. An empty store yields an empty, non-nil slice.
func (c *ListBookmarksCommand) Execute(ctx context.Context) ([]domain.Bookmark, error) {
	order, err := domain.ParseOrderBy(string(c.orderBy))
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	records, err := c.repo.List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	c.logger.Debug("bookmarks listed",
		logger.String("order_by", string(order)),
		logger.Int("count", len(records)))

	return toDomainList(records), nil
}
