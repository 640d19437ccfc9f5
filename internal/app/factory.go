package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/paths"
	"github.com/footprint-tools/argtree/internal/store"
	"github.com/footprint-tools/argtree/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool

	// History options
	HistoryEnabled bool
	HistoryPath    string

	Output io.Writer
}

// DefaultOptions derives options from merged config values.
func DefaultOptions(cfg map[string]string) Options {
	return Options{
		LogEnabled:     config.Bool(cfg, "enable_log"),
		LogLevel:       log.ParseLevel(cfg["log_level"]),
		LogPath:        paths.LogFilePath(),
		StyleEnabled:   config.Bool(cfg, "color"),
		HistoryEnabled: config.Bool(cfg, "enable_history"),
		HistoryPath:    store.DBPath(),
		Output:         os.Stdout,
	}
}

// New creates a new Application with all dependencies wired up. A history
// database that cannot be opened is logged and leaves History nil.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			logger = log.GetLogger()
		}
	}

	style.Init(opts.StyleEnabled)

	var history domain.HistoryStore
	if opts.HistoryEnabled && opts.HistoryPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HistoryPath), 0700); err != nil {
			logger.Warn("app: create history directory: %v", err)
		} else if s, err := store.New(opts.HistoryPath); err != nil {
			logger.Warn("app: history disabled: %v", err)
		} else {
			history = s
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &domain.Application{
		Config:  config.NewProvider(),
		History: history,
		Logger:  logger,
		Output:  out,
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// No history, NopLogger, and no styling.
func NewForTesting(out io.Writer) *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: out,
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
