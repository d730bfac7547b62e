package model

import "testing"

func TestParseQuality(t *testing.T) {
	tests := []struct {
		token    string
		expected Quality
	}{
		{"best", QualityBest},
		{"8k", Quality8K},
		{"4k", Quality4K},
		{"1080p", Quality1080p},
		{"720p", Quality720p},
		{"480p", Quality480p},
		{"360p", Quality360p},
		{"", QualityBest},
		{"hd", QualityBest},
		{"1080P", QualityBest},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseQuality(tt.token)
			if got != tt.expected {
				t.Errorf("ParseQuality(%q) = %s, expected %s", tt.token, got, tt.expected)
			}
		})
	}
}

func TestQualitiesOrder(t *testing.T) {
	qualities := Qualities()

	if len(qualities) != 7 {
		t.Fatalf("Expected 7 quality levels, got %d", len(qualities))
	}

	if qualities[0] != QualityBest {
		t.Errorf("Expected first quality to be best, got %s", qualities[0])
	}

	if qualities[len(qualities)-1] != Quality360p {
		t.Errorf("Expected last quality to be 360p, got %s", qualities[len(qualities)-1])
	}
}
