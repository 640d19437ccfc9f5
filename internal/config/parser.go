package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns rc file lines into a key/value map. Blank lines and lines
// starting with # are skipped; double-quoted values are unquoted.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(strings.TrimSpace(value))
	}

	return cfg, nil
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		if s, err := strconv.Unquote(value); err == nil {
			return s
		}
	}
	return value
}

// quote wraps values containing spaces, quotes or a leading # in quotes.
func quote(value string) string {
	if strings.ContainsAny(value, " \t\"") || strings.HasPrefix(value, "#") {
		return strconv.Quote(value)
	}
	return value
}
