// Package commands wraps each bookmark persistence operation in a single
// command object. Commands accept and return domain.Bookmark and convert
// to and from store.Record at the boundary.
package commands

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/store"
)

var (
	// ErrBookmarkNotFound is returned when no bookmark has the requested ID.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrBookmarkExists is returned when adding a bookmark whose ID is taken.
	ErrBookmarkExists = errors.New("bookmark already exists")
)

// Repository is the persistence engine the commands run against.
// Implementations report misses with store.ErrNotFound and duplicate IDs
// with store.ErrConflict.
type Repository interface {
	Create(ctx context.Context, rec store.Record) (store.Record, error)
	Get(ctx context.Context, id int64) (store.Record, error)
	Update(ctx context.Context, rec store.Record) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, order domain.OrderBy) ([]store.Record, error)
	Count(ctx context.Context) (int, error)
}
