package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical strings",
			a:    "print",
			b:    "print",
			want: 0,
		},
		{
			name: "one character difference",
			a:    "print",
			b:    "printy",
			want: 1,
		},
		{
			name: "typo - transposition",
			a:    "print",
			b:    "pirnt",
			want: 2,
		},
		{
			name: "typo - swapped letters",
			a:    "resolve",
			b:    "reslove",
			want: 2,
		},
		{
			name: "completely different",
			a:    "print",
			b:    "xyz123",
			want: 6,
		},
		{
			name: "empty string a",
			a:    "",
			b:    "print",
			want: 5,
		},
		{
			name: "empty string b",
			a:    "print",
			b:    "",
			want: 5,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "case insensitive",
			a:    "PRINT",
			b:    "print",
			want: 0,
		},
		{
			name: "missing letter",
			a:    "config",
			b:    "confg",
			want: 1,
		},
		{
			name: "extra letter",
			a:    "config",
			b:    "confiig",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevenshtein_Unicode(t *testing.T) {
	require.Equal(t, 1, levenshtein("café", "cafe"))
	require.Equal(t, 0, levenshtein("ÉTÉ", "été"))
}

func TestFindSimilar(t *testing.T) {
	commands := []string{"resolve", "history", "config", "version", "tree"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		maxResults int
		want       []string
	}{
		{
			name:       "missing letter",
			input:      "resolv",
			candidates: commands,
			maxResults: 3,
			want:       []string{"resolve"},
		},
		{
			name:       "case insensitive typo",
			input:      "Confg",
			candidates: commands,
			maxResults: 3,
			want:       []string{"config"},
		},
		{
			name:       "completely different returns nothing",
			input:      "xyz",
			candidates: commands,
			maxResults: 3,
			want:       []string{},
		},
		{
			name:       "exact match is not a suggestion",
			input:      "tree",
			candidates: commands,
			maxResults: 3,
			want:       []string{},
		},
		{
			name:       "ties sorted alphabetically",
			input:      "bet",
			candidates: []string{"set", "get"},
			maxResults: 3,
			want:       []string{"get", "set"},
		},
		{
			name:       "closest first and limited",
			input:      "bet",
			candidates: []string{"beta", "set", "get", "bet!!"},
			maxResults: 2,
			want:       []string{"beta", "get"},
		},
		{
			name:       "duplicates collapse",
			input:      "confg",
			candidates: []string{"config", "CONFIG"},
			maxResults: 3,
			want:       []string{"config"},
		},
		{
			name:       "no candidates",
			input:      "x",
			candidates: nil,
			maxResults: 3,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilar(tt.input, tt.candidates, tt.maxResults))
		})
	}
}
