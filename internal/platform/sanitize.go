package platform

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackFilename is used when sanitization leaves nothing behind
const FallbackFilename = "video"

// Characters illegal on common filesystems, including control characters
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Runs of underscores and whitespace collapse into one separator
var separatorRuns = regexp.MustCompile(`[_\s]+`)

// Characters trimmed from both ends of a sanitized name
const trimCutset = " ._"

// SanitizeFilename strips characters illegal on common filesystems, collapses
// separator runs, trims leading/trailing separator and dot characters, and
// truncates to maxLength while preserving the file extension. An empty result
// falls back to FallbackFilename.
func SanitizeFilename(name string, maxLength int) string {
	sanitized := invalidFilenameChars.ReplaceAllString(name, "_")
	sanitized = separatorRuns.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, trimCutset)

	if len([]rune(sanitized)) > maxLength {
		ext := filepath.Ext(sanitized)
		base := strings.TrimSuffix(sanitized, ext)

		maxBase := maxLength - len([]rune(ext))
		if maxBase < 0 {
			maxBase = 0
		}

		runes := []rune(base)
		if len(runes) > maxBase {
			runes = runes[:maxBase]
		}
		sanitized = string(runes) + ext
	}

	if sanitized == "" {
		return FallbackFilename
	}
	return sanitized
}
