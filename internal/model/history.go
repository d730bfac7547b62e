package model

import "time"

// HistoryEntry records the result of one download in the persistent history
// file. Entries are append-only; the store is their sole owner.
type HistoryEntry struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Filepath  string    `json:"filepath"`
	Platform  string    `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}
