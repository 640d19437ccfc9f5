package config

import "strings"

// Set replaces the value of key in lines, or appends it. The second
// result reports whether an existing entry was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + quote(value)

	for i, line := range lines {
		if lineKey(line) == key {
			lines[i] = entry
			return lines, true
		}
	}

	return append(lines, entry), false
}

// Unset removes every entry for key. Comments and blank lines are kept.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// lineKey returns the key of a key=value line, or "" for anything else.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}
