package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MrSnakeDoc/barky/internal/domain"
	"github.com/MrSnakeDoc/barky/internal/store"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, discarded on Close.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL DEFAULT '',
    url        TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    date_added TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS bookmarks_date_added_idx ON bookmarks (date_added, id);
CREATE INDEX IF NOT EXISTS bookmarks_title_idx ON bookmarks (title, id);
`

// Store persists bookmark records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema.
// Pass MemoryPath for an ephemeral database.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	if path == MemoryPath {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts rec. A zero ID lets SQLite assign one.
func (s *Store) Create(ctx context.Context, rec store.Record) (store.Record, error) {
	date := rec.DateAdded.Format(domain.DateLayout)

	if rec.ID == 0 {
		res, err := s.sqlDB.ExecContext(ctx,
			`INSERT INTO bookmarks (title, url, notes, date_added) VALUES (?, ?, ?, ?)`,
			rec.Title, rec.URL, rec.Notes, date)
		if err != nil {
			return store.Record{}, fmt.Errorf("insert bookmark: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return store.Record{}, fmt.Errorf("read inserted id: %w", err)
		}
		rec.ID = id
		return rec, nil
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO bookmarks (id, title, url, notes, date_added) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		rec.ID, rec.Title, rec.URL, rec.Notes, date)
	if err != nil {
		return store.Record{}, fmt.Errorf("insert bookmark %d: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.Record{}, fmt.Errorf("insert bookmark %d: %w", rec.ID, err)
	}
	if n == 0 {
		return store.Record{}, fmt.Errorf("bookmark %d: %w", rec.ID, store.ErrConflict)
	}
	return rec, nil
}

// Get loads the record with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (store.Record, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, title, url, notes, date_added FROM bookmarks WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Record{}, fmt.Errorf("bookmark %d: %w", id, store.ErrNotFound)
		}
		return store.Record{}, fmt.Errorf("get bookmark %d: %w", id, err)
	}
	return rec, nil
}

// Update overwrites every mutable column of the record matching rec.ID.
func (s *Store) Update(ctx context.Context, rec store.Record) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE bookmarks SET title = ?, url = ?, notes = ?, date_added = ? WHERE id = ?`,
		rec.Title, rec.URL, rec.Notes, rec.DateAdded.Format(domain.DateLayout), rec.ID)
	if err != nil {
		return fmt.Errorf("update bookmark %d: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update bookmark %d: %w", rec.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("bookmark %d: %w", rec.ID, store.ErrNotFound)
	}
	return nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("bookmark %d: %w", id, store.ErrNotFound)
	}
	return nil
}

// List returns every record, ascending on order with ID as tie-breaker.
func (s *Store) List(ctx context.Context, order domain.OrderBy) ([]store.Record, error) {
	query := `SELECT id, title, url, notes, date_added FROM bookmarks ORDER BY date_added ASC, id ASC`
	if order == domain.OrderByTitle {
		query = `SELECT id, title, url, notes, date_added FROM bookmarks ORDER BY title ASC, id ASC`
	}

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]store.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookmarks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (store.Record, error) {
	var rec store.Record
	var date string
	if err := sc.Scan(&rec.ID, &rec.Title, &rec.URL, &rec.Notes, &date); err != nil {
		return store.Record{}, err
	}
	added, err := domain.ParseDate(date)
	if err != nil {
		return store.Record{}, err
	}
	rec.DateAdded = added
	return rec, nil
}
