// Package migrations applies the embedded history schema.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/argtree/internal/log"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one versioned schema change, loaded from NN_description.sql.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations ordered by version.
func Load() ([]Migration, error) {
	return load(embedded, "sql")
}

func load(fsys fs.FS, dir string) ([]Migration, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		m, err := parse(path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("migrations: %s: %w", path.Base(name), err)
		}
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		m.SQL = string(body)
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("migrations: version %d used by %s and %s", all[i].Version, all[i-1], all[i])
		}
	}
	return all, nil
}

func parse(filename string) (Migration, error) {
	version, description, ok := strings.Cut(strings.TrimSuffix(filename, ".sql"), "_")
	if !ok || description == "" {
		return Migration{}, fmt.Errorf("expected NN_description.sql")
	}
	n, err := strconv.Atoi(version)
	if err != nil {
		return Migration{}, fmt.Errorf("version %q: %w", version, err)
	}
	return Migration{Version: n, Description: description}, nil
}

// Run applies, oldest first, every migration newer than the database's
// current version. Each migration commits on its own.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migrations: %s: %w", m, err)
		}
		log.Debug("store: applied migration %s", m)
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`, m.Version, m.Description); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return 0, fmt.Errorf("migrations: create schema table: %w", err)
	}
	var version sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("migrations: current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the migrations not yet applied, oldest first.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}
	i, _ := slices.BinarySearchFunc(all, current+1, func(m Migration, v int) int {
		return cmp.Compare(m.Version, v)
	})
	return all[i:], nil
}
