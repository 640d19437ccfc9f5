package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor []string
		want     bool
	}{
		{
			name:     "flag present",
			flags:    []string{"--json", "--no-color"},
			checkFor: []string{"--json"},
			want:     true,
		},
		{
			name:     "flag not present",
			flags:    []string{"--json"},
			checkFor: []string{"--no-color"},
			want:     false,
		},
		{
			name:     "empty flags",
			flags:    []string{},
			checkFor: []string{"--json"},
			want:     false,
		},
		{
			name:     "flag with value not detected as boolean",
			flags:    []string{"--catalog=x.yaml"},
			checkFor: []string{"--catalog"},
			want:     false,
		},
		{
			name:     "any alias matches",
			flags:    []string{"-h"},
			checkFor: []string{"--help", "-h"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewParsedFlags(tt.flags)
			require.Equal(t, tt.want, f.Has(tt.checkFor...))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	tests := []struct {
		name       string
		flags      []string
		flagName   string
		defaultVal string
		want       string
	}{
		{
			name:       "flag with value",
			flags:      []string{"--catalog=/tmp/c.yaml"},
			flagName:   "--catalog",
			defaultVal: "default",
			want:       "/tmp/c.yaml",
		},
		{
			name:       "flag not present returns default",
			flags:      []string{"--json"},
			flagName:   "--catalog",
			defaultVal: "default",
			want:       "default",
		},
		{
			name:       "empty value",
			flags:      []string{"--catalog="},
			flagName:   "--catalog",
			defaultVal: "default",
			want:       "",
		},
		{
			name:       "value containing equals",
			flags:      []string{"--catalog=a=b.yaml"},
			flagName:   "--catalog",
			defaultVal: "",
			want:       "a=b.yaml",
		},
		{
			name:       "last occurrence wins",
			flags:      []string{"--catalog=one", "--catalog=two"},
			flagName:   "--catalog",
			defaultVal: "",
			want:       "two",
		},
		{
			name:       "prefix of another flag is not a match",
			flags:      []string{"--catalogs=x"},
			flagName:   "--catalog",
			defaultVal: "default",
			want:       "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewParsedFlags(tt.flags)
			require.Equal(t, tt.want, f.String(tt.flagName, tt.defaultVal))
		})
	}
}

func TestParsedFlags_Unknown(t *testing.T) {
	f := NewParsedFlags([]string{"--json", "--catalog=x", "--verbose", "-q"})
	require.Equal(t, []string{"--verbose", "-q"}, f.Unknown("--json", "--catalog"))
	require.Empty(t, NewParsedFlags(nil).Unknown("--json"))
}
