package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/barky/internal/commands"
	"github.com/MrSnakeDoc/barky/internal/logger"
)

// Result summarises an import run
type Result struct {
	Added   int
	Updated int
}

// Importer applies a seed file through the bookmark commands: entries
// whose ID already exists are edited, everything else is added. Entries
// carrying an ID can be re-imported without creating duplicates.
type Importer struct {
	loader *Loader
	mapper *Mapper
	get    *commands.GetBookmarkCommand
	add    *commands.AddBookmarkCommand
	edit   *commands.EditBookmarkCommand
	logger logger.Logger
}

// NewImporter creates an importer for the seed file at path
func NewImporter(path string, repo commands.Repository, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(path),
		mapper: NewMapper(nil),
		get:    commands.NewGetBookmarkCommand(repo, log),
		add:    commands.NewAddBookmarkCommand(repo, log),
		edit:   commands.NewEditBookmarkCommand(repo, log),
		logger: log,
	}
}

// Import loads, validates and applies the seed file. Entries are persisted
// one at a time: a repository error stops the run, and the returned Result
// counts the entries already applied. Re-running the import after the
// failure is fixed completes it, since entries with an ID are edited.
func (im *Importer) Import(ctx context.Context) (Result, error) {
	file, err := im.loader.Load()
	if err != nil {
		return Result{}, err
	}

	bookmarks, err := im.mapper.MapBookmarks(file)
	if err != nil {
		return Result{}, fmt.Errorf("failed to map seed file: %w", err)
	}

	im.logger.Info("importing bookmarks", logger.Int("count", len(bookmarks)))

	var res Result
	for _, b := range bookmarks {
		if b.ID != 0 {
			_, err := im.get.Execute(ctx, b.ID)
			switch {
			case err == nil:
				if err := im.edit.Execute(ctx, b); err != nil {
					return res, err
				}
				res.Updated++
				continue
			case !errors.Is(err, commands.ErrBookmarkNotFound):
				return res, err
			}
		}

		if _, err := im.add.Execute(ctx, b); err != nil {
			return res, err
		}
		res.Added++
	}

	im.logger.Info("bookmarks imported",
		logger.Int("added", res.Added),
		logger.Int("updated", res.Updated))

	return res, nil
}
