// Package resolving implements the commands that resolve input against
// the catalog and inspect the result.
package resolving

import (
	"io"
	"os"

	"github.com/footprint-tools/argtree/internal/catalog"
	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/ui/style"
)

type Deps struct {
	GetAll      func() (map[string]string, error)
	LoadCatalog func(path string) (*catalog.Catalog, error)
	History     domain.HistoryStore
	Logger      domain.Logger
	Styler      domain.Styler
	Out         io.Writer
	// Self dumps the dispatch tree of argtree's own commands.
	Self func(w io.Writer) error
}

// DefaultDeps wires the actions to app's services.
func DefaultDeps(app *domain.Application, self func(w io.Writer) error) Deps {
	return Deps{
		GetAll:      app.Config.GetAll,
		LoadCatalog: LoadCatalog,
		History:     app.History,
		Logger:      app.Logger,
		Styler:      app.Styler,
		Out:         app.Output,
		Self:        self,
	}
}

// LoadCatalog loads the catalog at path with the builtin converters.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	return catalog.Load(path, convert.NewRegistry())
}

func (d Deps) logger() domain.Logger {
	if d.Logger == nil {
		return log.NopLogger{}
	}
	return d.Logger
}

func (d Deps) styler() domain.Styler {
	if d.Styler == nil {
		return style.NopStyler{}
	}
	return d.Styler
}

func (d Deps) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

// settings returns the merged config, or the defaults when it cannot be read.
func (d Deps) settings() map[string]string {
	if d.GetAll != nil {
		if cfg, err := d.GetAll(); err == nil {
			return cfg
		}
	}
	cfg, _ := config.GetAll()
	return cfg
}
