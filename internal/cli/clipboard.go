package cli

import (
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ExtractURL returns the first http(s) URL found in text, or ""
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

// ClipboardURL probes the system clipboard for a URL. Clipboard access is
// best effort; a missing clipboard utility reads as no URL.
func ClipboardURL() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return ExtractURL(strings.TrimSpace(text))
}
