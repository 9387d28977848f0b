// Package store provides the SQLite catalog snapshot. The snapshot is
// written by `upliftctl import` and read back when the CSV sources
// are not at hand; it is a cache of the catalog, never a system of
// record.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/emilyvoss/uplift/internal/catalog"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		content_type TEXT NOT NULL,
		title TEXT NOT NULL,
		creator TEXT,
		url TEXT NOT NULL,
		mood_hint TEXT,
		feature_text TEXT,
		tags TEXT,
		UNIQUE(content_type, url)
	);

	CREATE INDEX IF NOT EXISTS idx_items_type ON items(content_type);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveItems stores items, returning count of new items inserted.
// Duplicates (by content type + URL) are silently ignored.
// Thread-safe: acquires write lock.
func (s *Store) SaveItems(items []catalog.Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return 0, nil
	}

	stmt, err := s.db.Prepare(`
		INSERT OR IGNORE INTO items (
			content_type, title, creator, url, mood_hint, feature_text, tags
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	newCount := 0
	for _, item := range items {
		result, err := stmt.Exec(
			string(item.Type),
			item.Title,
			item.Creator,
			item.URL,
			item.MoodHint,
			item.FeatureText,
			item.Tags,
		)
		if err != nil {
			return newCount, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return newCount, err
		}
		if affected > 0 {
			newCount++
		}
	}

	return newCount, nil
}

// GetItems retrieves one content type's table in insertion order.
// Thread-safe: acquires read lock.
func (s *Store) GetItems(typ catalog.ContentType) ([]catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT content_type, title, creator, url, mood_hint, feature_text, tags
		FROM items
		WHERE content_type = ?
		ORDER BY rowid
	`

	rows, err := s.db.Query(query, string(typ))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		var item catalog.Item
		var ct string
		err := rows.Scan(
			&ct,
			&item.Title,
			&item.Creator,
			&item.URL,
			&item.MoodHint,
			&item.FeatureText,
			&item.Tags,
		)
		if err != nil {
			return nil, err
		}
		item.Type = catalog.ContentType(ct)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// LoadCatalog reads the whole snapshot back into an in-memory catalog.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	tables := make(map[catalog.ContentType][]catalog.Item, len(catalog.Types))
	for _, typ := range catalog.Types {
		items, err := s.GetItems(typ)
		if err != nil {
			return nil, fmt.Errorf("load %s table: %w", typ, err)
		}
		tables[typ] = items
	}
	return catalog.NewCatalog(tables), nil
}

// CountByType returns the number of stored items per content type.
// Thread-safe: acquires read lock.
func (s *Store) CountByType() (map[catalog.ContentType]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT content_type, COUNT(*) FROM items GROUP BY content_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[catalog.ContentType]int)
	for rows.Next() {
		var ct string
		var n int
		if err := rows.Scan(&ct, &n); err != nil {
			return nil, err
		}
		counts[catalog.ContentType(ct)] = n
	}
	return counts, rows.Err()
}

// CountMoodHinted returns how many stored items carry a mood hint.
// Thread-safe: acquires read lock.
func (s *Store) CountMoodHinted() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM items WHERE mood_hint != ''`).Scan(&n)
	return n, err
}
