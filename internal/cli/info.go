package cli

import (
	"fmt"

	"github.com/shogentheone/videograb/internal/engine"
	"github.com/shogentheone/videograb/internal/model"
)

// PrintInfo renders the pre-download metadata preview. The estimated size
// line is gated on the show_file_size setting.
func PrintInfo(info *engine.Info, showSize bool) {
	if info == nil {
		return
	}

	if info.IsPlaylist {
		fmt.Printf(" Playlist: %s\n", info.Title)
		fmt.Printf(" Videos: %d\n", info.EntryCount)
		if info.Uploader != "" {
			fmt.Printf(" By: %s\n", info.Uploader)
		}
		return
	}

	fmt.Printf(" Title: %s\n", info.Title)
	if info.Uploader != "" {
		fmt.Printf(" Uploader: %s\n", info.Uploader)
	}
	fmt.Printf(" Duration: %s\n", formatDuration(info.DurationSec))
	if info.Views > 0 {
		fmt.Printf(" Views: %d\n", info.Views)
	}
	if showSize {
		size := "Unknown"
		if info.SizeApprox > 0 {
			size = model.FormatSize(info.SizeApprox)
		}
		fmt.Printf(" Est. size: %s\n", size)
	}
	if info.Resolution != "" {
		fmt.Printf(" Resolution: %s\n", info.Resolution)
	}
}

// formatDuration renders seconds as m:ss, "N/A" when unknown
func formatDuration(totalSec int) string {
	if totalSec <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}
