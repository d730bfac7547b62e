package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File extensions for timed captions and plain transcripts
const (
	CaptionExt    = ".srt"
	TranscriptExt = ".txt"
)

// Timing lines contain this arrow between start and end timestamps
const timingArrow = "-->"

// Transcript file permissions
const transcriptFilePermissions = 0644

// CleanLines converts timed-caption lines into a plain transcript: pure
// numeric index lines and timestamp-arrow lines are dropped, and consecutive
// duplicate lines collapse to one (a known artifact of auto-generated
// captions).
func CleanLines(lines []string) []string {
	var text []string
	lastLine := ""

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isDigits(line) {
			continue
		}
		if strings.Contains(line, timingArrow) {
			continue
		}

		if line != lastLine {
			text = append(text, line)
			lastLine = line
		}
	}

	return text
}

// ConvertToTranscript rewrites one .srt caption file as a plain-text
// transcript next to it and removes the caption file. It returns the
// transcript path.
func ConvertToTranscript(captionPath string) (string, error) {
	if !strings.HasSuffix(captionPath, CaptionExt) {
		return "", fmt.Errorf("not a caption file: %s", captionPath)
	}

	data, err := os.ReadFile(captionPath)
	if err != nil {
		return "", fmt.Errorf("failed to read captions: %w", err)
	}

	lines := CleanLines(strings.Split(string(data), "\n"))
	transcriptPath := strings.TrimSuffix(captionPath, CaptionExt) + TranscriptExt

	if err := os.WriteFile(transcriptPath, []byte(strings.Join(lines, "\n")), transcriptFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	// Discard the intermediate timed-caption file once the transcript is written
	if err := os.Remove(captionPath); err != nil {
		return transcriptPath, fmt.Errorf("failed to remove caption file: %w", err)
	}

	return transcriptPath, nil
}

// ConvertSidecars converts every caption file that sits next to the given
// media file and shares its base name (the engine names them
// "<base>.<lang>.srt"). It returns the transcript paths written.
func ConvertSidecars(mediaPath string) ([]string, error) {
	dir := filepath.Dir(mediaPath)
	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var transcripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, base) || !strings.HasSuffix(name, CaptionExt) {
			continue
		}

		transcript, err := ConvertToTranscript(filepath.Join(dir, name))
		if err != nil {
			return transcripts, err
		}
		transcripts = append(transcripts, transcript)
	}

	return transcripts, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
