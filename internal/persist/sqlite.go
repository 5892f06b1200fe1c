package persist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultNamespace is the slot key shared by all surfaces of the tool.
// Namespacing keeps other applications sharing the database file from
// colliding with our document.
const DefaultNamespace = "meanval_data"

// SQLiteSlotStore keeps the aggregate document in a single row of a
// SQLite database, keyed by namespace.
type SQLiteSlotStore struct {
	db        *sql.DB
	namespace string
}

// OpenSQLite opens (or creates) the slot database at the given path.
// ":memory:" is accepted for tests.
func OpenSQLite(path, namespace string) (*SQLiteSlotStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating slot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening slot database: %w", err)
	}
	// Single writer; also keeps :memory: databases on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		namespace  TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating slots table: %w", err)
	}

	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &SQLiteSlotStore{db: db, namespace: namespace}, nil
}

func (s *SQLiteSlotStore) Load(ctx context.Context) (*Snapshot, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM slots WHERE namespace = ?`, s.namespace).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading slot: %v", ErrSlotUnavailable, err)
	}
	return DecodeSnapshot([]byte(doc))
}

func (s *SQLiteSlotStore) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO slots (namespace, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		s.namespace, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: writing slot: %v", ErrSlotUnavailable, err)
	}
	return nil
}

func (s *SQLiteSlotStore) Close() error {
	return s.db.Close()
}
