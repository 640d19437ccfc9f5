package store

import "github.com/footprint-tools/argtree/internal/paths"

// DBPath returns the default location of the history database.
func DBPath() string {
	return paths.HistoryDBPath()
}
