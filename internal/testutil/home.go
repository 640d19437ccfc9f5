package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempHome points HOME and the XDG base directories at a fresh temporary
// directory and returns it.
func TempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("ARGTREE_HOME", "")
	return home
}

// WriteCatalog writes a commands.yaml with content into dir and returns
// its path.
func WriteCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "commands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
