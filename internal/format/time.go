// Package format renders values for terminal output.
package format

import (
	"fmt"
	"time"
)

// Timestamp formats t in local time with seconds.
// Example output: "2026-03-01 09:30:00"
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

// Relative describes t relative to now.
// Example output: "just now", "5m ago", "3h ago", "2d ago".
// Anything older than 30 days is shown as a date.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	default:
		return t.Local().Format("2006-01-02")
	}
}
