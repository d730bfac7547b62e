package model

// Quality is the desired video quality for a download
type Quality string

const (
	// QualityBest selects the maximum available quality
	QualityBest Quality = "best"

	// Quality8K caps video height at 4320p
	Quality8K Quality = "8k"

	// Quality4K caps video height at 2160p
	Quality4K Quality = "4k"

	// Quality1080p caps video height at 1080p
	Quality1080p Quality = "1080p"

	// Quality720p caps video height at 720p
	Quality720p Quality = "720p"

	// Quality480p caps video height at 480p
	Quality480p Quality = "480p"

	// Quality360p caps video height at 360p
	Quality360p Quality = "360p"
)

// String returns the string representation of Quality
func (q Quality) String() string {
	return string(q)
}

// Qualities returns all selectable quality levels in descending order
func Qualities() []Quality {
	return []Quality{QualityBest, Quality8K, Quality4K, Quality1080p, Quality720p, Quality480p, Quality360p}
}

// ParseQuality matches a bare token against the quality enum.
// Unmatched tokens fall back to QualityBest.
func ParseQuality(token string) Quality {
	for _, q := range Qualities() {
		if token == string(q) {
			return q
		}
	}
	return QualityBest
}

// DownloadRequest describes one logical download attempt. It is immutable
// once constructed; a batch entry creates exactly one request.
type DownloadRequest struct {
	URL         string
	Quality     Quality
	AudioOnly   bool
	SkipIfKnown bool
}
