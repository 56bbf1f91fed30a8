package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"tickwatch/internal/core/model"
)

const stateDatabaseName = "state.db"

const (
	keyVersion   = "version"
	keyMode      = "mode"
	keyRemaining = "remaining_seconds"
)

// SQLiteStore keeps the timer state as rows of a key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping state database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (store *SQLiteStore) initTables() error {
	_, err := store.db.Exec(`
		CREATE TABLE IF NOT EXISTS timer_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create timer_state table: %w", err)
	}
	return nil
}

// Load reads the timer state. An empty table yields the default state.
func (store *SQLiteStore) Load() (model.SavedState, error) {
	rows, err := store.db.Query(`SELECT key, value FROM timer_state`)
	if err != nil {
		return model.DefaultSavedState(), fmt.Errorf("query timer state: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.DefaultSavedState(), fmt.Errorf("scan timer state: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return model.DefaultSavedState(), fmt.Errorf("read timer state: %w", err)
	}
	if len(values) == 0 {
		return model.DefaultSavedState(), nil
	}

	version, err := strconv.Atoi(values[keyVersion])
	if err != nil {
		return model.DefaultSavedState(), fmt.Errorf("%w: version %q", ErrCorruptState, values[keyVersion])
	}
	remaining, err := strconv.ParseInt(values[keyRemaining], 10, 64)
	if err != nil {
		return model.DefaultSavedState(), fmt.Errorf("%w: remaining %q", ErrCorruptState, values[keyRemaining])
	}
	return decodeState(version, values[keyMode], remaining)
}

// Save upserts every field in a single transaction.
func (store *SQLiteStore) Save(state model.SavedState) error {
	tx, err := store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin state transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO timer_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return fmt.Errorf("prepare state upsert: %w", err)
	}
	defer stmt.Close()

	fields := [][2]string{
		{keyVersion, strconv.Itoa(StateVersion)},
		{keyMode, string(state.Mode)},
		{keyRemaining, strconv.FormatInt(state.Remaining, 10)},
	}
	for _, field := range fields {
		if _, err := stmt.Exec(field[0], field[1]); err != nil {
			return fmt.Errorf("save %s: %w", field[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit timer state: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}
