package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/store"
)

// Store persists bookmark records as JSON values in Redis.
// Records never expire.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Close closes the underlying client
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Create stores a new record. A zero ID is replaced by the next free sequence value.
func (s *Store) Create(ctx context.Context, rec store.Record) (store.Record, error) {
	if rec.ID != 0 {
		if err := s.insert(ctx, rec); err != nil {
			return store.Record{}, err
		}
		return rec, nil
	}

	// Caller-chosen IDs may already occupy sequence values; skip past them.
	for {
		id, err := s.client.Incr(ctx, KeyBookmarkSeq).Result()
		if err != nil {
			return store.Record{}, fmt.Errorf("failed to allocate bookmark id: %w", err)
		}
		rec.ID = id

		err = s.insert(ctx, rec)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			return store.Record{}, err
		}
		return rec, nil
	}
}

func (s *Store) insert(ctx context.Context, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	// MULTI/EXEC keeps the value and its set membership together. On a
	// conflict the SADD re-adds an ID that is already a member.
	var setNX *redis.BoolCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		setNX = pipe.SetNX(ctx, BookmarkKey(rec.ID), data, 0)
		pipe.SAdd(ctx, KeyAllBookmarks, rec.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	if !setNX.Val() {
		return fmt.Errorf("bookmark %d: %w", rec.ID, store.ErrConflict)
	}

	return nil
}

// Get retrieves a record by ID
func (s *Store) Get(ctx context.Context, id int64) (store.Record, error) {
	data, err := s.client.Get(ctx, BookmarkKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return store.Record{}, fmt.Errorf("bookmark %d: %w", id, store.ErrNotFound)
		}
		return store.Record{}, fmt.Errorf("failed to get bookmark: %w", err)
	}

	var rec store.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return store.Record{}, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}

	return rec, nil
}

// Update overwrites an existing record. It never creates one.
func (s *Store) Update(ctx context.Context, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	ok, err := s.client.SetXX(ctx, BookmarkKey(rec.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	if !ok {
		return fmt.Errorf("bookmark %d: %w", rec.ID, store.ErrNotFound)
	}

	return nil
}

// Delete removes a record and its set membership in one transaction
func (s *Store) Delete(ctx context.Context, id int64) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, BookmarkKey(id))
		pipe.SRem(ctx, KeyAllBookmarks, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	if del.Val() == 0 {
		return fmt.Errorf("bookmark %d: %w", id, store.ErrNotFound)
	}
	return nil
}

// List retrieves all records ordered by the requested key
func (s *Store) List(ctx context.Context, order domain.OrderBy) ([]store.Record, error) {
	members, err := s.client.SMembers(ctx, KeyAllBookmarks).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}

	records := make([]store.Record, 0, len(members))
	if len(members) == 0 {
		return records, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := ParseMemberID(m)
		if err != nil {
			return nil, err
		}
		keys = append(keys, BookmarkKey(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Set member without a value: deleted between SMEMBERS and MGET.
			continue
		}
		var rec store.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", keys[i], err)
		}
		records = append(records, rec)
	}

	store.SortRecords(records, order)
	return records, nil
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, KeyAllBookmarks).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return int(n), nil
}

// Reset removes every bookmark key, the ID set and the sequence.
func (s *Store) Reset(ctx context.Context) error {
	members, err := s.client.SMembers(ctx, KeyAllBookmarks).Result()
	if err != nil {
		return fmt.Errorf("failed to get bookmark IDs: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, m := range members {
		pipe.Del(ctx, KeyPrefixBookmark+m)
	}
	pipe.Del(ctx, KeyAllBookmarks, KeyBookmarkSeq)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset bookmarks: %w", err)
	}
	return nil
}
