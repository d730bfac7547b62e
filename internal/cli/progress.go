package cli

import (
	"fmt"
	"strings"

	"github.com/shogentheone/videograb/internal/model"
)

const progressBarLength = 30

// TerminalProgress renders download progress as an in-place bar on stdout
type TerminalProgress struct {
	showSize bool
}

// NewTerminalProgress creates a progress renderer. When showSize is false
// only the bar and percentage are printed.
func NewTerminalProgress(showSize bool) *TerminalProgress {
	return &TerminalProgress{showSize: showSize}
}

// OnProgress redraws the progress line
func (t *TerminalProgress) OnProgress(snap model.ProgressSnapshot) {
	pct := snap.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * progressBarLength / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarLength-filled)

	line := fmt.Sprintf("\r [%s] %3d%%", bar, pct)
	if t.showSize && snap.TotalBytes > 0 {
		line += fmt.Sprintf(" - %s/%s", model.FormatSize(snap.DownloadedBytes), model.FormatSize(snap.TotalBytes))
	}
	if snap.Speed != "" {
		line += fmt.Sprintf(" @ %s", snap.Speed)
	}
	if snap.ETASec >= 0 {
		line += fmt.Sprintf(" ETA %ds", snap.ETASec)
	}

	fmt.Print(line)
}
