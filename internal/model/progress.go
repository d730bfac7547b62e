package model

import "fmt"

// ProgressSnapshot is the payload handed to a progress observer during an
// engine fetch. It carries raw byte counts plus pre-formatted display fields.
type ProgressSnapshot struct {
	URL             string
	Percent         int // 0 to 100
	DownloadedBytes int64
	TotalBytes      int64
	Speed           string // human readable speed (e.g., "1.2MB/s")
	ETASec          int    // ETA in seconds, -1 if unknown
}

// Size units for FormatSize
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize formats a byte count into a human readable size
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return "Unknown"
	}
	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}
