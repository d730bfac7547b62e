package platform

import (
	"strings"
	"testing"

	"github.com/shogentheone/videograb/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Tag
	}{
		{"youtube video", "https://youtube.com/watch?v=X", TagYouTube},
		{"youtube short link", "https://youtu.be/X", TagYouTube},
		{"youtube playlist param", "https://youtube.com/watch?v=X&list=Y", TagYouTubePlaylist},
		{"youtube playlist path", "https://www.youtube.com/playlist?list=Y", TagYouTubePlaylist},
		{"tiktok", "https://tiktok.com/@u/video/1", TagTikTok},
		{"instagram", "https://www.instagram.com/reel/abc/", TagInstagram},
		{"twitter", "https://twitter.com/u/status/1", TagTwitter},
		{"x dot com", "https://x.com/u/status/1", TagTwitter},
		{"facebook", "https://facebook.com/watch?v=1", TagFacebook},
		{"fb watch", "https://fb.watch/abc", TagFacebook},
		{"vimeo", "https://vimeo.com/123", TagVimeo},
		{"dailymotion", "https://dailymotion.com/video/x1", TagDailymotion},
		{"twitch", "https://twitch.tv/streamer", TagTwitch},
		{"unknown host", "https://example.org/video", TagUnknown},
		{"case insensitive", "HTTPS://YOUTUBE.COM/WATCH?V=X", TagYouTube},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.url)
			if got != tt.expected {
				t.Errorf("Detect(%q) = %s, expected %s", tt.url, got, tt.expected)
			}
		})
	}
}

func TestResolveYouTubeQuality(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{})

	profile := resolver.Resolve("https://youtube.com/watch?v=X", model.Quality1080p, false)

	if profile.Tag != TagYouTube {
		t.Errorf("Expected youtube tag, got %s", profile.Tag)
	}

	if !strings.Contains(profile.FormatSelector, "height<=1080") {
		t.Errorf("Expected height-capped selector, got %s", profile.FormatSelector)
	}

	if profile.MergeContainer != "mp4" {
		t.Errorf("Expected mp4 merge container, got %s", profile.MergeContainer)
	}

	if !strings.Contains(profile.OutputTemplate, "youtube_") {
		t.Errorf("Expected youtube_ output prefix, got %s", profile.OutputTemplate)
	}
}

func TestResolvePlaylistContinuesOnError(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{})

	profile := resolver.Resolve("https://youtube.com/watch?v=X&list=Y", model.QualityBest, false)

	if profile.Tag != TagYouTubePlaylist {
		t.Errorf("Expected youtube_playlist tag, got %s", profile.Tag)
	}

	if !profile.ContinueOnError {
		t.Error("Expected playlist profile to continue on per-entry errors")
	}

	if !strings.Contains(profile.OutputTemplate, "%(playlist)s") {
		t.Errorf("Expected playlist directory template, got %s", profile.OutputTemplate)
	}
}

func TestResolveTikTok(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{Enabled: true, Languages: "all"})

	profile := resolver.Resolve("https://tiktok.com/@u/video/1", model.QualityBest, false)

	if profile.FormatSelector != "best" {
		t.Errorf("Expected best selector, got %s", profile.FormatSelector)
	}

	if profile.ExtraHeaders["User-Agent"] == "" {
		t.Error("Expected custom user agent header")
	}

	if !profile.SkipCertCheck {
		t.Error("Expected relaxed certificate check")
	}

	// TikTok skips post-processing, including subtitle handling
	if profile.SubtitlesEnabled() {
		t.Error("Expected subtitles to be disabled for tiktok")
	}

	if profile.MergeContainer != "" {
		t.Errorf("Expected no merge step, got %s", profile.MergeContainer)
	}
}

func TestResolveAudioOnly(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{})

	profile := resolver.Resolve("https://youtube.com/watch?v=X", model.QualityBest, true)

	if !profile.ExtractAudio {
		t.Error("Expected audio extraction")
	}

	if profile.AudioCodec != "mp3" || profile.AudioBitrate != "320" {
		t.Errorf("Expected mp3/320, got %s/%s", profile.AudioCodec, profile.AudioBitrate)
	}

	if profile.FormatSelector != "bestaudio/best" {
		t.Errorf("Expected bestaudio selector, got %s", profile.FormatSelector)
	}

	if !strings.Contains(profile.OutputTemplate, "audio_") {
		t.Errorf("Expected audio_ output prefix, got %s", profile.OutputTemplate)
	}
}

func TestResolveUnknownPlatform(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{})

	profile := resolver.Resolve("https://example.org/video", model.Quality720p, false)

	if profile.Tag != TagUnknown {
		t.Errorf("Expected unknown tag, got %s", profile.Tag)
	}

	if profile.FormatSelector != "best" {
		t.Errorf("Expected best-effort selector, got %s", profile.FormatSelector)
	}
}

func TestWithoutSubtitles(t *testing.T) {
	resolver := NewResolver("downloads", SubtitleOptions{Enabled: true, Languages: "en", Embed: true})

	profile := resolver.Resolve("https://youtube.com/watch?v=X", model.QualityBest, false)
	if !profile.SubtitlesEnabled() {
		t.Fatal("Expected subtitles enabled on the original profile")
	}

	degraded := profile.WithoutSubtitles()
	if degraded.SubtitlesEnabled() {
		t.Error("Expected subtitles disabled on the degraded copy")
	}

	// The original profile must not be mutated
	if !profile.SubtitlesEnabled() {
		t.Error("Original profile was mutated by WithoutSubtitles")
	}
}
