package engine

import (
	"strings"
	"unicode/utf8"
)

// MaxErrorSummaryLength bounds failure messages shown to the user
const MaxErrorSummaryLength = 150

// Markers identifying a rate-limited subtitle fetch
const (
	subtitleMarker  = "subtitle"
	rateLimitMarker = "429"
)

// IsSubtitleRateLimit reports whether the failure is specifically a rate
// limit on subtitle fetching. These get a degrade-and-retry path instead of
// consuming the main retry budget.
func IsSubtitleRateLimit(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(strings.ToLower(message), subtitleMarker) &&
		strings.Contains(message, rateLimitMarker)
}

// Summary returns the error message truncated to maxLength for display
func Summary(err error, maxLength int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if utf8.RuneCountInString(message) <= maxLength {
		return message
	}
	runes := []rune(message)
	return string(runes[:maxLength]) + "..."
}
