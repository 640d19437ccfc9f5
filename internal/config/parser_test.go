package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "empty input",
			lines:   []string{},
			want:    map[string]string{},
			wantErr: false,
		},
		{
			name:  "single key-value",
			lines: []string{"key=value"},
			want: map[string]string{
				"key": "value",
			},
			wantErr: false,
		},
		{
			name: "multiple key-values",
			lines: []string{
				"key1=value1",
				"key2=value2",
				"key3=value3",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "ignores blank lines",
			lines: []string{
				"key1=value1",
				"",
				"key2=value2",
				"   ",
				"key3=value3",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "ignores comment lines",
			lines: []string{
				"# This is a comment",
				"key1=value1",
				"# Another comment",
				"key2=value2",
				"  # Indented comment",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
			},
			wantErr: false,
		},
		{
			name: "trims whitespace around key and value",
			lines: []string{
				"  key1  =  value1  ",
				"key2=  value2",
				"  key3=value3  ",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "handles equals sign in value",
			lines: []string{
				"url=https://example.com?param=value",
				"equation=x=y+z",
				"base64=SGVsbG8=",
			},
			want: map[string]string{
				"url":      "https://example.com?param=value",
				"equation": "x=y+z",
				"base64":   "SGVsbG8=",
			},
			wantErr: false,
		},
		{
			name: "invalid line without equals sign",
			lines: []string{
				"key1=value1",
				"invalid_line",
				"key2=value2",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid empty key",
			lines: []string{
				"=value",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "empty value is valid",
			lines: []string{
				"key=",
			},
			want: map[string]string{
				"key": "",
			},
			wantErr: false,
		},
		{
			name: "BOM (Byte Order Mark) is stripped from first line",
			lines: []string{
				"\uFEFFkey1=value1",
				"key2=value2",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
			},
			wantErr: false,
		},
		{
			name: "mixed valid content",
			lines: []string{
				"# argtree configuration",
				"",
				"catalog_path=/etc/argtree/commands.yaml",
				"history_limit=50",
				"  # Logging",
				"enable_log=false",
				"",
				"log_level=debug",
			},
			want: map[string]string{
				"catalog_path":  "/etc/argtree/commands.yaml",
				"history_limit": "50",
				"enable_log":    "false",
				"log_level":     "debug",
			},
			wantErr: false,
		},
		{
			name: "quoted values are unquoted",
			lines: []string{
				`catalog_path="/home/me/My Commands/commands.yaml"`,
				`greeting="say \"hi\""`,
				`bare="unterminated`,
			},
			want: map[string]string{
				"catalog_path": "/home/me/My Commands/commands.yaml",
				"greeting":     `say "hi"`,
				"bare":         `"unterminated`,
			},
			wantErr: false,
		},
		{
			name: "duplicate keys - last one wins",
			lines: []string{
				"key=value1",
				"key=value2",
			},
			want: map[string]string{
				"key": "value2",
			},
			wantErr: false,
		},
		{
			name: "special characters in values",
			lines: []string{
				`catalog_path=C:\Users\me\argtree\commands.yaml`,
				"catalog_path_2=~/.config/argtree/commands.yaml",
				"special=!@#$%^&*()",
			},
			want: map[string]string{
				"catalog_path":   `C:\Users\me\argtree\commands.yaml`,
				"catalog_path_2": "~/.config/argtree/commands.yaml",
				"special":        "!@#$%^&*()",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse_TemplateIsAllComments(t *testing.T) {
	testutil.TempHome(t)

	lines := template()
	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Empty(t, cfg)

	for _, key := range domain.VisibleConfigKeys() {
		require.Contains(t, lines, "# "+key.Name+"="+quote(defaultValue(key.Name)))
	}
}

func TestParse_SettingsFallBackToDefaults(t *testing.T) {
	cfg, err := Parse([]string{
		"enable_history=false",
		"history_limit=lots",
		"color=sometimes",
	})
	require.NoError(t, err)

	require.False(t, Bool(cfg, "enable_history"))
	require.True(t, Bool(cfg, "color"), "unparseable value uses the default")
	require.True(t, Bool(cfg, "enable_log"), "missing value uses the default")
	require.Equal(t, 20, Int(cfg, "history_limit"))
}

func TestQuote_ParsesBack(t *testing.T) {
	tests := []struct {
		value  string
		quoted bool
	}{
		{value: "warn"},
		{value: "/srv/argtree/commands.yaml"},
		{value: "/srv/my commands/commands.yaml", quoted: true},
		{value: "#not-a-comment", quoted: true},
		{value: `say "hi"`, quoted: true},
		{value: `C:\argtree\commands.yaml`},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			q := quote(tt.value)
			require.Equal(t, tt.quoted, q != tt.value)

			cfg, err := Parse([]string{"catalog_path=" + q})
			require.NoError(t, err)
			require.Equal(t, tt.value, cfg["catalog_path"])
		})
	}
}
