package cli

import (
	"strings"
	"testing"

	"github.com/shogentheone/videograb/internal/model"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		expected Args
	}{
		{
			name:     "no arguments",
			argv:     nil,
			expected: Args{Quality: model.QualityBest},
		},
		{
			name:     "url only",
			argv:     []string{"https://youtube.com/watch?v=x"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest},
		},
		{
			name:     "url with quality",
			argv:     []string{"https://youtube.com/watch?v=x", "720p"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.Quality720p},
		},
		{
			name:     "unmatched quality falls back to best",
			argv:     []string{"https://youtube.com/watch?v=x", "supreme"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest},
		},
		{
			name:     "audio flag",
			argv:     []string{"https://youtube.com/watch?v=x", "--audio"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest, AudioOnly: true},
		},
		{
			name:     "short audio flag",
			argv:     []string{"-a", "https://youtube.com/watch?v=x"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest, AudioOnly: true},
		},
		{
			name:     "playlist flag",
			argv:     []string{"https://youtube.com/playlist?list=y", "-p", "1080p"},
			expected: Args{URL: "https://youtube.com/playlist?list=y", Quality: model.Quality1080p, Playlist: true},
		},
		{
			name:     "no retry flag",
			argv:     []string{"https://youtube.com/watch?v=x", "--no-retry"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest, NoRetry: true},
		},
		{
			name:     "help flag",
			argv:     []string{"--help"},
			expected: Args{Quality: model.QualityBest, Help: true},
		},
		{
			name:     "unknown flag ignored",
			argv:     []string{"--verbose", "https://youtube.com/watch?v=x"},
			expected: Args{URL: "https://youtube.com/watch?v=x", Quality: model.QualityBest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseArgs(tt.argv)
			if got != tt.expected {
				t.Errorf("ParseArgs(%v) = %+v, expected %+v", tt.argv, got, tt.expected)
			}
		})
	}
}

func TestArgsRequestSkipsKnownURLs(t *testing.T) {
	args := ParseArgs([]string{"https://youtube.com/watch?v=x", "720p", "-a"})
	req := args.Request()

	if !req.SkipIfKnown {
		t.Error("Expected single-shot requests to skip already-downloaded URLs")
	}
	if req.URL != args.URL || req.Quality != args.Quality || req.AudioOnly != args.AudioOnly {
		t.Errorf("Request does not mirror parsed args: %+v vs %+v", req, args)
	}
}

func TestUsageMentionsAllFlags(t *testing.T) {
	usage := Usage()
	for _, flag := range []string{"--audio", "--playlist", "--no-retry", "--help"} {
		if !strings.Contains(usage, flag) {
			t.Errorf("Usage text is missing %s", flag)
		}
	}
}
