package variants

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/convert"
	"github.com/footprint-tools/argtree/internal/dispatchers"
)

// recordingLogger captures formatted messages per level.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debug(format string, args ...any) { l.add("DEBUG", format, args...) }
func (l *recordingLogger) Info(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *recordingLogger) Warn(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.add("ERROR", format, args...) }
func (l *recordingLogger) Close() error                     { return nil }

func banDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID:    0,
			Usage: "ban <player> <reason...>",
			Params: []Param{
				{Position: 0, Name: "player", Converter: convert.Word},
				{Position: 1, Name: "reason", Converter: convert.String, VarArgs: true},
			},
		},
		{
			ID:    1,
			Usage: "ban <player> <duration> <reason...>",
			Params: []Param{
				{Position: 0, Name: "player", Converter: convert.Word},
				{Position: 1, Name: "duration", Converter: convert.Duration},
				{Position: 2, Name: "reason", Converter: convert.String, VarArgs: true},
			},
		},
		{
			ID:    2,
			Usage: "ban <player>",
			Params: []Param{
				{Position: 0, Name: "player", Converter: convert.Word},
			},
		},
	}
}

func TestResolve(t *testing.T) {
	r, err := New(banDescriptors())
	require.NoError(t, err)

	tests := []struct {
		name      string
		tokens    []string
		wantID    int
		wantUsage string
		wantArgs  []any
	}{
		{
			name:      "player only",
			tokens:    []string{"steve"},
			wantID:    2,
			wantUsage: "ban <player>",
			wantArgs:  []any{"steve"},
		},
		{
			name:      "duration beats free text",
			tokens:    []string{"steve", "1h", "griefing", "spawn"},
			wantID:    1,
			wantUsage: "ban <player> <duration> <reason...>",
			wantArgs:  []any{"steve", mustDuration(t, "1h"), "griefing spawn"},
		},
		{
			name:      "free text when duration does not parse",
			tokens:    []string{"steve", "griefing", "spawn"},
			wantID:    0,
			wantUsage: "ban <player> <reason...>",
			wantArgs:  []any{"steve", "griefing spawn"},
		},
		{
			name:      "duration followed by nothing falls back to reason",
			tokens:    []string{"steve", "1h"},
			wantID:    0,
			wantUsage: "ban <player> <reason...>",
			wantArgs:  []any{"steve", "1h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.wantID, res.Variant)
			require.Equal(t, tt.wantUsage, res.Usage)
			if diff := cmp.Diff(tt.wantArgs, res.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func mustDuration(t *testing.T, s string) any {
	t.Helper()
	v, err := convert.Duration.Convert(s)
	require.NoError(t, err)
	return v
}

func TestResolve_NoMatch(t *testing.T) {
	r, err := New(banDescriptors())
	require.NoError(t, err)

	_, err = r.Resolve(nil)
	require.ErrorIs(t, err, dispatchers.ErrNoMatch)
	require.ElementsMatch(t, []string{
		"ban <player> <reason...>",
		"ban <player> <duration> <reason...>",
		"ban <player>",
	}, r.Candidates(err))
}

func TestResolve_SortsParamsByPosition(t *testing.T) {
	r, err := New([]Descriptor{{
		ID:    5,
		Usage: "give <amount> <item>",
		Params: []Param{
			{Position: 1, Name: "item", Converter: convert.Word},
			{Position: 0, Name: "amount", Converter: convert.Int},
		},
	}})
	require.NoError(t, err)

	res, err := r.Resolve([]string{"3", "apple"})
	require.NoError(t, err)
	require.Equal(t, 5, res.Variant)
	require.Equal(t, []any{3, "apple"}, res.Args)
}

func TestNew_RejectsInvalidDescriptors(t *testing.T) {
	_, err := New([]Descriptor{
		{ID: 0, Params: []Param{{Position: 0, Converter: convert.Int}}},
		{ID: 0, Params: []Param{{Position: 0, Converter: convert.Word}}},
	})
	require.ErrorContains(t, err, "duplicate variant id 0")

	_, err = New([]Descriptor{{
		ID: 0,
		Params: []Param{
			{Position: 0, Converter: convert.String, VarArgs: true},
			{Position: 1, Converter: convert.Int},
		},
	}})
	require.ErrorIs(t, err, dispatchers.ErrStructural)
}

func TestReload_SwapsTree(t *testing.T) {
	r, err := New([]Descriptor{{ID: 0, Usage: "a <int>", Params: []Param{{Converter: convert.Int}}}})
	require.NoError(t, err)

	_, err = r.Resolve([]string{"word"})
	require.ErrorIs(t, err, dispatchers.ErrNoMatch)

	require.NoError(t, r.Reload([]Descriptor{{ID: 3, Usage: "b <word>", Params: []Param{{Converter: convert.Word}}}}))

	res, err := r.Resolve([]string{"word"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Variant)
	require.Equal(t, "b <word>", r.Usage(3))
}

func TestReload_KeepsTreeOnError(t *testing.T) {
	r, err := New([]Descriptor{{ID: 0, Usage: "a <int>", Params: []Param{{Converter: convert.Int}}}})
	require.NoError(t, err)

	err = r.Reload([]Descriptor{{ID: 0, Params: []Param{{Converter: nil}}}})
	require.Error(t, err)

	res, err := r.Resolve([]string{"1"})
	require.NoError(t, err)
	require.Equal(t, 0, res.Variant)
}

func TestReload_ConcurrentWithResolve(t *testing.T) {
	descs := []Descriptor{{ID: 0, Usage: "n <int>", Params: []Param{{Converter: convert.Int}}}}
	r, err := New(descs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				res, err := r.Resolve([]string{"1"})
				if err != nil || res.Variant != 0 {
					t.Errorf("unexpected resolution %+v, %v", res, err)
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		require.NoError(t, r.Reload(descs))
	}
	wg.Wait()
}

func TestResolver_LogsShadowedVariants(t *testing.T) {
	logger := &recordingLogger{}
	_, err := New([]Descriptor{
		{ID: 0, Usage: "first <int>", Params: []Param{{Converter: convert.Int}}},
		{ID: 1, Usage: "second <int>", Params: []Param{{Converter: convert.Int}}},
	}, WithLogger(logger))
	require.NoError(t, err)

	require.Contains(t, logger.lines, "WARN: variants: variant 1 (second <int>) duplicates an earlier variant and can never match")
	require.Contains(t, logger.lines, "DEBUG: variants: loaded 2 variant(s)")
}

func TestResolver_Dump(t *testing.T) {
	r, err := New(banDescriptors())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf))
	require.Contains(t, buf.String(), "*root*")
	require.Contains(t, buf.String(), "string... varargs: true")
}
