package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/barky/internal/logger"
	"github.com/MrSnakeDoc/barky/internal/store"
	"github.com/MrSnakeDoc/barky/internal/store/sqlite"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestImporterAddsThenUpdates(t *testing.T) {
	repo, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	first := writeSeed(t, `bookmarks:
  - id: 1
    title: Example
    url: http://www.example.com
    date_added: 2024-04-23
  - id: 2
    title: Example 2
    url: http://www.example2.com
`)

	res, err := NewImporter(first, repo, logger.Nop()).Import(ctx)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if res.Added != 2 || res.Updated != 0 {
		t.Errorf("first import = %+v, want 2 added", res)
	}

	second := writeSeed(t, `bookmarks:
  - id: 1
    title: Renamed
    url: http://www.example.com
    date_added: 2024-04-23
  - id: 3
    title: Example 3
    url: http://www.example3.com
`)

	res, err = NewImporter(second, repo, logger.Nop()).Import(ctx)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if res.Added != 1 || res.Updated != 1 {
		t.Errorf("second import = %+v, want 1 added 1 updated", res)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	rec, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", rec.Title)
	}
}

func TestImporterRejectsInvalidFileWithoutWriting(t *testing.T) {
	repo, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()

	path := writeSeed(t, `bookmarks:
  - id: 1
    url: http://www.example.com
  - id: 2
    url: not a url
`)

	if _, err := NewImporter(path, repo, logger.Nop()).Import(ctx); err == nil {
		t.Fatal("Import() should fail on invalid entry")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 (nothing written)", n)
	}
}

// flakyRepo fails every Create after the first `allow` calls.
type flakyRepo struct {
	*sqlite.Store
	allow int
}

var errFlaky = errors.New("write failed")

func (r *flakyRepo) Create(ctx context.Context, rec store.Record) (store.Record, error) {
	if r.allow == 0 {
		return store.Record{}, errFlaky
	}
	r.allow--
	return r.Store.Create(ctx, rec)
}

func TestImporterStopsOnWriteFailureAndResumes(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	path := writeSeed(t, `bookmarks:
  - id: 1
    url: http://www.example.com
  - id: 2
    url: http://www.example2.com
  - id: 3
    url: http://www.example3.com
`)

	res, err := NewImporter(path, &flakyRepo{Store: db, allow: 1}, logger.Nop()).Import(ctx)
	if !errors.Is(err, errFlaky) {
		t.Fatalf("Import() error = %v, want write failure", err)
	}
	if res.Added != 1 || res.Updated != 0 {
		t.Errorf("partial import = %+v, want 1 added", res)
	}
	if n, _ := db.Count(ctx); n != 1 {
		t.Errorf("count after failure = %d, want 1", n)
	}

	res, err = NewImporter(path, db, logger.Nop()).Import(ctx)
	if err != nil {
		t.Fatalf("resumed Import() error = %v", err)
	}
	if res.Added != 2 || res.Updated != 1 {
		t.Errorf("resumed import = %+v, want 2 added 1 updated", res)
	}
}
