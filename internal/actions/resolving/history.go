package resolving

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/format"
)

// History handles "argtree history [limit]".
func History(args []any, flags *dispatchers.ParsedFlags, deps Deps) error {
	s := deps.styler()
	out := deps.out()

	if deps.History == nil {
		_, _ = fmt.Fprintln(out, s.Muted("History is disabled. Enable it with 'argtree config set enable_history true'."))
		return nil
	}

	limit := config.Int(deps.settings(), "history_limit")
	if len(args) > 0 {
		if n, ok := args[0].(int); ok {
			limit = n
		}
	}

	records, err := deps.History.List(limit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if flags.Has("--json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if records == nil {
			return enc.Encode([]any{})
		}
		return enc.Encode(records)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, s.Muted("No resolutions recorded yet."))
		return nil
	}

	now := time.Now()
	for _, r := range records {
		input := strings.TrimSpace(r.Command + " " + strings.Join(r.Input, " "))
		result := s.Error("no match")
		if r.Matched {
			result = s.Success(fmt.Sprintf("#%d %s", r.Variant, r.Usage))
		}
		_, _ = fmt.Fprintf(out, "%s  %s  %s %s\n",
			s.Muted(format.Timestamp(r.CreatedAt)+" ("+format.Relative(r.CreatedAt, now)+")"),
			input,
			s.Muted("->"),
			result,
		)
	}
	return nil
}
