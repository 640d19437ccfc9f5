package resolving

import (
	"errors"
	"strings"
	"sync"

	"github.com/footprint-tools/argtree/internal/catalog"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/variants"
)

// Outcome is a successful resolution of catalog input.
type Outcome struct {
	Command    catalog.Command
	Resolution variants.Resolution
}

// Params returns the param specs of the matched variant.
func (o Outcome) Params() []catalog.ParamSpec {
	return o.Command.Variants[o.Resolution.Variant].Params
}

// Engine resolves input against the commands of one catalog. Each
// command's resolver is built on first use. Safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	logger  domain.Logger

	mu        sync.Mutex
	resolvers map[string]*variants.Resolver
}

// NewEngine creates an engine for cat.
func NewEngine(cat *catalog.Catalog, logger domain.Logger) *Engine {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Engine{
		catalog:   cat,
		logger:    logger,
		resolvers: make(map[string]*variants.Resolver),
	}
}

// Catalog returns the catalog the engine resolves against.
func (e *Engine) Catalog() *catalog.Catalog {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog
}

// Resolver returns the resolver for command, building it if needed.
// Unknown commands yield a usage.ErrUnknownCommand error.
func (e *Engine) Resolver(command string) (*variants.Resolver, catalog.Command, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolver(command)
}

// resolver is Resolver with e.mu held.
func (e *Engine) resolver(command string) (*variants.Resolver, catalog.Command, error) {
	cmd, ok := e.catalog.Command(command)
	if !ok {
		return nil, catalog.Command{}, usage.UnknownCommand(command, dispatchers.FindSimilar(command, e.catalog.Names(), 3)...)
	}

	key := strings.ToLower(cmd.Name)
	if r, ok := e.resolvers[key]; ok {
		return r, cmd, nil
	}

	descs, err := e.catalog.Descriptors(cmd.Name)
	if err != nil {
		return nil, catalog.Command{}, err
	}
	r, err := variants.New(descs, variants.WithLogger(e.logger))
	if err != nil {
		return nil, catalog.Command{}, err
	}
	e.resolvers[key] = r
	return r, cmd, nil
}

// Reload switches the engine to cat. Resolvers already built for commands
// that cat still defines are reloaded in place; the others are dropped and
// rebuilt on next use.
func (e *Engine) Reload(cat *catalog.Catalog) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key, r := range e.resolvers {
		cmd, ok := cat.Command(key)
		if !ok {
			delete(e.resolvers, key)
			continue
		}
		descs, err := cat.Descriptors(cmd.Name)
		if err == nil {
			err = r.Reload(descs)
		}
		if err != nil {
			e.logger.Warn("resolving: reload %s: %v", cmd.Name, err)
			delete(e.resolvers, key)
		}
	}
	e.catalog = cat
	e.logger.Info("resolving: catalog reloaded (%d commands)", len(cat.Commands))
}

// Resolve matches tokens against command. Input that fits no variant
// yields a usage.ErrNoMatchingVariant error listing the closest usages.
// The lock is held throughout so that a concurrent Reload cannot pair the
// resolution with a command from another catalog.
func (e *Engine) Resolve(command string, tokens []string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, cmd, err := e.resolver(command)
	if err != nil {
		return Outcome{}, err
	}

	res, err := r.Resolve(tokens)
	if err != nil {
		if errors.Is(err, dispatchers.ErrNoMatch) {
			return Outcome{Command: cmd}, usage.NoMatchingVariant(cmd.Name, tokens, r.Candidates(err), err)
		}
		return Outcome{Command: cmd}, err
	}

	return Outcome{Command: cmd, Resolution: res}, nil
}

// Record stores one resolution attempt. A nil store records nothing.
func Record(store domain.HistoryStore, logger domain.Logger, command string, tokens []string, outcome Outcome, resolveErr error) {
	if store == nil {
		return
	}

	rec := domain.HistoryRecord{
		Command: command,
		Input:   tokens,
		Variant: -1,
	}
	if outcome.Command.Name != "" {
		rec.Command = outcome.Command.Name
	}
	if resolveErr == nil {
		rec.Variant = outcome.Resolution.Variant
		rec.Usage = outcome.Resolution.Usage
		rec.Matched = true
	}

	if err := store.Insert(rec); err != nil {
		logger.Warn("history: could not record %q: %v", command, err)
	}
}
