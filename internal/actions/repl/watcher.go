package repl

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/footprint-tools/argtree/internal/domain"
)

// catalogChangedMsg is sent when the catalog file is written or replaced.
type catalogChangedMsg struct{}

// watcher reports changes to a single file on changes. Bursts of events
// collapse into one pending signal.
type watcher struct {
	w       *fsnotify.Watcher
	changes chan struct{}
}

func watchFile(path string, logger domain.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory to catch editors that save by rename.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &watcher{w: fw, changes: make(chan struct{}, 1)}
	go w.loop(filepath.Clean(path), logger)
	return w, nil
}

func (w *watcher) loop(path string, logger domain.Logger) {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			logger.Warn("repl: watch catalog: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *watcher) Close() error {
	return w.w.Close()
}

// waitForChange delivers the next signal from changes as a catalogChangedMsg.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}
