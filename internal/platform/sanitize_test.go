package platform

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean name", "video.mp4", "video.mp4"},
		{"reserved characters", `a<b>c:d"e/f\g|h?i*j.mp4`, "a_b_c_d_e_f_g_h_i_j.mp4"},
		{"separator runs", "too   many___underscores.mp4", "too_many_underscores.mp4"},
		{"leading trailing junk", " ._video title_. ", "video_title"},
		{"control characters", "bad\x00\x1fname.mp4", "bad_name.mp4"},
		{"empty input", "", FallbackFilename},
		{"only junk", " ._ ", FallbackFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input, 200)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFilenameNoReservedCharsRemain(t *testing.T) {
	inputs := []string{
		`<>:"/\|?*`,
		"mixed <bad> and good.mkv",
		strings.Repeat(`?`, 50) + "name.webm",
	}

	for _, input := range inputs {
		got := SanitizeFilename(input, 200)
		if strings.ContainsAny(got, `<>:"/\|?*`) {
			t.Errorf("SanitizeFilename(%q) = %q still contains reserved characters", input, got)
		}
		if strings.HasPrefix(got, ".") || strings.HasPrefix(got, "_") || strings.HasPrefix(got, " ") {
			t.Errorf("SanitizeFilename(%q) = %q has a leading separator or dot", input, got)
		}
		if strings.HasSuffix(got, ".") || strings.HasSuffix(got, "_") || strings.HasSuffix(got, " ") {
			t.Errorf("SanitizeFilename(%q) = %q has a trailing separator or dot", input, got)
		}
	}
}

func TestSanitizeFilenameTruncationPreservesExtension(t *testing.T) {
	long := strings.Repeat("a", 300) + ".mp4"

	got := SanitizeFilename(long, 50)

	if !strings.HasSuffix(got, ".mp4") {
		t.Errorf("Expected extension preserved, got %q", got)
	}

	if len([]rune(got)) > 50 {
		t.Errorf("Expected total length <= 50, got %d", len([]rune(got)))
	}

	base := strings.TrimSuffix(got, ".mp4")
	if len([]rune(base)) > 50 {
		t.Errorf("Expected base length within the maximum, got %d", len([]rune(base)))
	}
}
