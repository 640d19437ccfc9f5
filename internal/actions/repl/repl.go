package repl

import (
	"github.com/footprint-tools/argtree/internal/actions/resolving"
	"github.com/footprint-tools/argtree/internal/catalog"
	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Run handles "argtree repl".
func Run(_ []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	if deps.IsTerminal == nil || !deps.IsTerminal() {
		return usage.NotATerminal("repl")
	}

	engine, cfg, err := resolving.OpenEngine(flags, deps.Deps)
	if err != nil {
		return err
	}

	var logger domain.Logger = log.NopLogger{}
	if deps.Logger != nil {
		logger = deps.Logger
	}

	var record recordFunc
	if config.Bool(cfg, "enable_history") && deps.History != nil {
		record = func(command string, tokens []string, o resolving.Outcome, err error) {
			resolving.Record(deps.History, logger, command, tokens, o, err)
		}
	}

	var styler domain.Styler = style.NopStyler{}
	if deps.Styler != nil {
		styler = deps.Styler
	}

	m := newModel(engine, styler, record)

	path := resolving.CatalogPath(flags, cfg)
	m.reload = func() (*catalog.Catalog, error) {
		return deps.LoadCatalog(path)
	}
	if w, err := watchFile(path, logger); err != nil {
		logger.Warn("repl: catalog changes will not be picked up: %v", err)
	} else {
		defer func() { _ = w.Close() }()
		m.changes = w.changes
	}

	return deps.Run(m)
}
