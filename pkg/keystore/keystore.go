// Package keystore persists collected keyword candidates in SQLite so that
// repeated collector runs deduplicate across sessions.
package keystore

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "ghostwriter.db"

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

CREATE TABLE IF NOT EXISTS keywords (
    keyword_id INTEGER PRIMARY KEY AUTOINCREMENT,
    keyword TEXT NOT NULL,
    product TEXT,
    link TEXT,
    source TEXT NOT NULL,
    collected_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(keyword, link)
);

CREATE INDEX IF NOT EXISTS idx_keywords_source ON keywords(source);
`

// Entry is one collected keyword candidate. Product and Link may be empty
// when the source only yields a topic.
type Entry struct {
	Keyword     string
	Product     string
	Link        string
	Source      string
	CollectedAt time.Time
}

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return sqlDB, nil
}

// Open opens or creates the keyword database at path.
func Open(path string) (*DB, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// Insert stores an entry. Returns true when the entry is new, false when a
// row with the same keyword and link already exists.
func (db *DB) Insert(e Entry) (bool, error) {
	result, err := db.Exec(`
		INSERT OR IGNORE INTO keywords (keyword, product, link, source)
		VALUES (?, ?, ?, ?)
	`, e.Keyword, e.Product, e.Link, e.Source)
	if err != nil {
		return false, fmt.Errorf("failed to insert keyword: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}
	return n > 0, nil
}

// List returns all stored entries, newest first.
func (db *DB) List() ([]Entry, error) {
	rows, err := db.Query(`
		SELECT keyword, product, link, source, collected_at
		FROM keywords
		ORDER BY keyword_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Keyword, &e.Product, &e.Link, &e.Source, &e.CollectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keyword rows: %w", err)
	}
	return entries, nil
}

// Clear removes all stored entries and returns how many were deleted.
func (db *DB) Clear() (int64, error) {
	result, err := db.Exec("DELETE FROM keywords")
	if err != nil {
		return 0, fmt.Errorf("failed to clear keywords: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted keywords: %w", err)
	}
	return n, nil
}
