// Package store persists resolution history in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/store/migrations"
)

// Fixed-width UTC timestamps sort lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps a SQLite connection holding the resolutions table.
// It implements domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens the database at path and runs migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// NewWithDB creates a Store from an existing, already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Path returns the database file path, empty for injected connections.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB, path string) error {
	if path == ":memory:" {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		return nil
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	_, err := db.Exec("PRAGMA busy_timeout=5000")
	return err
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert records a resolution attempt. Missing ids and timestamps are filled in.
func (s *Store) Insert(record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	if record.Input == nil {
		record.Input = []string{}
	}

	input, err := json.Marshal(record.Input)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO resolutions
		 (id, command, input, variant, usage, matched, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Command,
		string(input),
		record.Variant,
		record.Usage,
		record.Matched,
		record.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// List returns up to limit records, newest first. A limit <= 0 returns all.
func (s *Store) List(limit int) ([]domain.HistoryRecord, error) {
	query := `
		SELECT id, command, input, variant, usage, matched, created_at
		FROM resolutions
		ORDER BY created_at DESC, rowid DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Count returns the number of recorded attempts.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM resolutions").Scan(&n)
	return n, err
}

func scanRecord(rows *sql.Rows) (domain.HistoryRecord, error) {
	var (
		r     domain.HistoryRecord
		input string
		ts    string
	)

	if err := rows.Scan(&r.ID, &r.Command, &input, &r.Variant, &r.Usage, &r.Matched, &ts); err != nil {
		return domain.HistoryRecord{}, err
	}

	if err := json.Unmarshal([]byte(input), &r.Input); err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("decode input of %s: %w", r.ID, err)
	}

	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return domain.HistoryRecord{}, err
	}
	r.CreatedAt = t

	return r, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
