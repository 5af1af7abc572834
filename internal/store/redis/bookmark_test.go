package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// newTestStore connects to BARKY_TEST_REDIS_ADDR (DB 15) and wipes bookmark keys
// before and after the test. Skips when the variable is unset.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("BARKY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BARKY_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis at %s unavailable: %v", addr, err)
	}

	s := NewStore(client)
	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Reset(context.Background())
		_ = s.Close()
	})
	return s
}

func TestStoreCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	added := time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC)

	if _, err := s.Create(ctx, store.Record{ID: 1, Title: "a", URL: "http://a", DateAdded: added}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, store.Record{ID: 1, Title: "dup", DateAdded: added}); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("duplicate create: expected ErrConflict, got %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.URL != "http://a" || !got.DateAdded.Equal(added) {
		t.Errorf("unexpected record: %+v", got)
	}

	got.Title = "goofy"
	if err := s.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Update(ctx, store.Record{ID: 99}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v; want 1", n, err)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, 1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete missing: expected ErrNotFound, got %v", err)
	}
}

func TestStoreCreateSkipsTakenIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, store.Record{ID: 1, Title: "explicit", DateAdded: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	rec, err := s.Create(ctx, store.Record{Title: "auto", DateAdded: time.Now()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == 1 || rec.ID == 0 {
		t.Errorf("auto ID = %d, want a fresh non-zero ID", rec.ID)
	}
}

func TestStoreListOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC) }

	for _, rec := range []store.Record{
		{ID: 1, Title: "Zebra", DateAdded: day(2)},
		{ID: 2, Title: "Apple", DateAdded: day(3)},
		{ID: 3, Title: "Mango", DateAdded: day(1)},
	} {
		if _, err := s.Create(ctx, rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byDate, err := s.List(ctx, domain.OrderByDateAdded)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	byTitle, err := s.List(ctx, domain.OrderByTitle)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	wantDate := []int64{3, 1, 2}
	wantTitle := []int64{2, 3, 1}
	for i := range wantDate {
		if byDate[i].ID != wantDate[i] {
			t.Errorf("date order position %d: got %d, want %d", i, byDate[i].ID, wantDate[i])
		}
		if byTitle[i].ID != wantTitle[i] {
			t.Errorf("title order position %d: got %d, want %d", i, byTitle[i].ID, wantTitle[i])
		}
	}
}

func TestStoreKeepsSetInStepWithValues(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	added := time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC)

	if _, err := s.Create(ctx, store.Record{ID: 3, Title: "a", URL: "http://a", DateAdded: added}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, store.Record{ID: 3, Title: "dup", DateAdded: added}); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("duplicate create: expected ErrConflict, got %v", err)
	}

	member, err := s.client.SIsMember(ctx, KeyAllBookmarks, 3).Result()
	if err != nil || !member {
		t.Fatalf("SIsMember(3) = %v, %v; want true", member, err)
	}
	if n, err := s.Count(ctx); err != nil || n != 1 {
		t.Fatalf("Count() = %d, %v; want 1", n, err)
	}

	if err := s.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := s.client.Exists(ctx, BookmarkKey(3)).Result(); n != 0 {
		t.Error("value survived delete")
	}
	if n, err := s.Count(ctx); err != nil || n != 0 {
		t.Errorf("Count() after delete = %d, %v; want 0", n, err)
	}
	if err := s.Delete(ctx, 3); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
