package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/paths"
)

// ErrLockTimeout is returned when another process holds the rc file lock
// for longer than lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

const (
	lockTimeout  = 5 * time.Second
	lockStaleAge = 30 * time.Second
	lockPoll     = 50 * time.Millisecond
)

// rcFile is the key=value file backing the configuration.
type rcFile struct {
	path string
}

func userFile() (rcFile, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return rcFile{}, err
	}
	return rcFile{path: path}, nil
}

// lines returns the raw lines of the file. A missing or empty file is
// seeded with a commented template listing every key.
func (f rcFile) lines() ([]string, error) {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(f.path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", f.path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", f.path, err)
	}

	if len(lines) == 0 {
		lines = template()
		if err := f.replace(lines); err != nil {
			log.Warn("config: could not write template to %s: %v", f.path, err)
		}
	}
	return lines, nil
}

// values parses the file into a key/value map.
func (f rcFile) values() (map[string]string, error) {
	lines, err := f.lines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// replace writes lines to a temp file in the same directory and renames
// it over the rc file.
func (f rcFile) replace(lines []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err = w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// update rewrites the file through edit while holding the lock.
func (f rcFile) update(edit func([]string) []string) error {
	unlock, err := f.lock()
	if err != nil {
		return err
	}
	defer unlock()

	lines, err := f.lines()
	if err != nil {
		return err
	}
	return f.replace(edit(lines))
}

// lock creates <path>.lock exclusively, polling until lockTimeout. Locks
// older than lockStaleAge are assumed abandoned and removed.
func (f rcFile) lock() (func(), error) {
	lockPath := f.path + ".lock"
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > lockStaleAge {
			log.Warn("config: removing stale lock %s", lockPath)
			_ = os.Remove(lockPath)
		}

		file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
			return func() {
				_ = file.Close()
				_ = os.Remove(lockPath)
			}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("config: lock %s: %w", f.path, err)
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPoll)
	}
}

// template lists every visible key, commented out, with its default.
func template() []string {
	lines := []string{
		"# argtree configuration",
		"# Edit values below or use: argtree config set <key> <value>",
		"",
	}
	for _, key := range domain.VisibleConfigKeys() {
		lines = append(lines,
			"# "+key.Description,
			"# "+key.Name+"="+quote(defaultValue(key.Name)),
		)
	}
	return lines
}
