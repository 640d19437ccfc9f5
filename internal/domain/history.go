package domain

import "time"

// HistoryRecord is one resolution attempt made through the CLI.
type HistoryRecord struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Input     []string  `json:"input"`
	Variant   int       `json:"variant"` // -1 when nothing matched
	Usage     string    `json:"usage,omitempty"`
	Matched   bool      `json:"matched"`
	CreatedAt time.Time `json:"created_at"`
}
