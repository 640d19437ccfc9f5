package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/footprint-tools/argtree/internal/dispatchers"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/usage"
)

// WriteHelp prints the command overview, or the commands starting with
// topic when it is not empty.
func (d *Dispatcher) WriteHelp(w io.Writer, styler domain.Styler, topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return d.writeOverview(w, styler)
	}

	word := strings.Fields(topic)[0]
	if !d.isWord(word) {
		return usage.NotACommand(word, dispatchers.FindSimilar(word, d.words, 3)...)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, c := range d.commands {
		if strings.EqualFold(c.Name(), word) && strings.HasPrefix(strings.ToLower(usageOf(c.params)), strings.ToLower(topic)) {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\n", c.Usage(), styler.Muted(c.Summary))
		}
	}
	return tw.Flush()
}

func (d *Dispatcher) writeOverview(w io.Writer, styler domain.Styler) error {
	_, _ = fmt.Fprintln(w, "argtree - resolve command input against typed variants")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styler.Header("Usage:"))
	_, _ = fmt.Fprintln(w, "  argtree <command> [args] [flags]")

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for cat := CategoryResolve; cat <= CategoryInfo; cat++ {
		header := false
		for _, c := range d.commands {
			if c.Category != cat {
				continue
			}
			if !header {
				_, _ = fmt.Fprintf(tw, "\n%s\n", styler.Header(cat.String()+":"))
				header = true
			}
			_, _ = fmt.Fprintf(tw, "  %s\t%s\n", c.Usage(), styler.Muted(c.Summary))
		}
	}

	_, _ = fmt.Fprintf(tw, "\n%s\n", styler.Header("Flags:"))
	for _, f := range GlobalFlags {
		name := f.Name
		if f.ValueHint != "" {
			name += "=" + f.ValueHint
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\n", name, styler.Muted(f.Description))
	}
	return tw.Flush()
}
