package model

// Package model defines domain data structures used across the app: download
// requests and outcomes, history entries, batch summaries, and status enums.
// All records are constructed once and never mutated afterwards; a retry
// produces a new outcome rather than editing a prior one.
