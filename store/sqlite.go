package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores every key as a row of a single prefs table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens the SQLite database at path. The special path
// ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	// an in-memory database exists per connection
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, errOpenStore.Wrap(fmt.Errorf("enable WAL mode: %w", err))
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errOpenStore.Wrap(fmt.Errorf("create tables: %w", err))
	}

	return &SQLiteBackend{db: db}, nil
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getValue(q queryRower, key string) ([]byte, error) {
	var value []byte

	err := q.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return value, err
}

const upsertValue = `
	INSERT INTO prefs (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
`

func (s *SQLiteBackend) Get(key string) ([]byte, error) {
	return getValue(s.db, key)
}

func (s *SQLiteBackend) Put(key string, value []byte) error {
	_, err := s.db.Exec(upsertValue, key, value)
	return err
}

func (s *SQLiteBackend) Update(
	key string,
	fn func(old []byte) ([]byte, error),
) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	old, err := getValue(tx, key)
	if err != nil {
		return err
	}

	value, err := fn(old)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(upsertValue, key, value); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
