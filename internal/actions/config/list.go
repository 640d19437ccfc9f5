package config

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
)

type entry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Default bool   `json:"default"`
}

// List handles "argtree config" and "argtree config list".
func List(_ []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []entry
	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists || (key.HideIfEmpty && value == "") {
			continue
		}
		entries = append(entries, entry{
			Key:     key.Name,
			Value:   value,
			Default: key.Default != "" && value == key.Default,
		})
	}

	if flags.Has("--json") {
		if entries == nil {
			entries = []entry{}
		}
		enc := json.NewEncoder(deps.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Value)
	}
	return tw.Flush()
}
