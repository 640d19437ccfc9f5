package resolving

import (
	"errors"
	"io/fs"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/usage"
)

// CatalogPath picks --catalog over the catalog_path setting.
func CatalogPath(flags *dispatchers.ParsedFlags, cfg map[string]string) string {
	return flags.String("--catalog", cfg["catalog_path"])
}

// OpenEngine loads the catalog selected by flags and config and returns an
// engine for it.
func OpenEngine(flags *dispatchers.ParsedFlags, deps Deps) (*Engine, map[string]string, error) {
	cfg := deps.settings()
	path := CatalogPath(flags, cfg)

	cat, err := deps.LoadCatalog(path)
	if err != nil {
		ue := usage.InvalidCatalog(path, err)
		if errors.Is(err, fs.ErrNotExist) {
			ue.Hints = append(ue.Hints,
				"Create the file, pass --catalog=<path>, or run 'argtree config set catalog_path <path>'.")
		}
		return nil, cfg, ue
	}

	deps.logger().Debug("resolving: loaded catalog %s (%d commands)", path, len(cat.Commands))
	return NewEngine(cat, deps.logger()), cfg, nil
}
