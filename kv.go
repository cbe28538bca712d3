package postdesk

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// KV wraps a SQLite database holding named slots. Each collection lives
// whole in one slot value; every save replaces the slot.
type KV struct {
	db *sql.DB
}

// OpenKV opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the slots table.
func OpenKV(path string) (*KV, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access and set a busy
	// timeout so writers wait instead of returning SQLITE_BUSY immediately.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	kv := &KV{db: db}
	if err := kv.ensureSchema(); err != nil {
		return nil, err
	}
	return kv, nil
}

// Close closes the underlying database connection.
func (kv *KV) Close() error {
	return kv.db.Close()
}

func (kv *KV) ensureSchema() error {
	_, err := kv.db.Exec(`
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// Get returns the value stored in the named slot. The second return is
// false when the slot has never been written.
func (kv *KV) Get(key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set replaces the value of the named slot.
func (kv *KV) Set(key, value string) error {
	_, err := kv.db.Exec(`INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)`, key, value)
	return err
}
