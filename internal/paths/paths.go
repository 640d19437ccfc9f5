package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "argtree"

// HomeEnv, when set, holds every argtree file (catalog, log, history)
// instead of the OS default directories.
const HomeEnv = "ARGTREE_HOME"

// AppDataDir returns the application directory for the catalog and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	path := os.Getenv(HomeEnv)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "."
		}
		path = filepath.Join(dir, appDirName)
	}

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// The history database lives here.
//   - macOS: ~/Library/Application Support/argtree
//   - Linux: $XDG_DATA_HOME/argtree or ~/.local/share/argtree
//   - Windows: %LOCALAPPDATA%\argtree
func AppLocalDataDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}

	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the rc file (~/.argtreerc).
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".argtreerc"), nil
}

// CatalogFilePath returns the default command catalog location.
func CatalogFilePath() string {
	return filepath.Join(AppDataDir(), "commands.yaml")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "argtree.log")
}

// HistoryDBPath returns the path to the resolution history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
