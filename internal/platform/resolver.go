package platform

import (
	"path/filepath"
	"strings"

	"github.com/shogentheone/videograb/internal/model"
)

// Tag identifies the detected source platform
type Tag string

const (
	TagYouTube         Tag = "youtube"
	TagYouTubePlaylist Tag = "youtube_playlist"
	TagTikTok          Tag = "tiktok"
	TagInstagram       Tag = "instagram"
	TagTwitter         Tag = "twitter"
	TagFacebook        Tag = "facebook"
	TagVimeo           Tag = "vimeo"
	TagDailymotion     Tag = "dailymotion"
	TagTwitch          Tag = "twitch"
	TagUnknown         Tag = "unknown"
)

// String returns the string representation of Tag
func (t Tag) String() string {
	return string(t)
}

// Playlist markers checked before falling through to plain youtube
const (
	playlistPathMarker  = "playlist"
	playlistParamMarker = "&list="
)

// Height-capped format selectors per quality level
var formatSelectors = map[model.Quality]string{
	model.Quality8K:    "bestvideo[height<=4320]+bestaudio/best[height<=4320]",
	model.Quality4K:    "bestvideo[height<=2160]+bestaudio/best[height<=2160]",
	model.Quality1080p: "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
	model.Quality720p:  "bestvideo[height<=720]+bestaudio/best[height<=720]",
	model.Quality480p:  "bestvideo[height<=480]+bestaudio/best[height<=480]",
	model.Quality360p:  "bestvideo[height<=360]+bestaudio/best[height<=360]",
	model.QualityBest:  "bestvideo+bestaudio/best",
}

// Audio extraction parameters
const (
	AudioCodec   = "mp3"
	AudioBitrate = "320"

	audioFormatSelector = "bestaudio/best"
	bestFormatSelector  = "best"
)

// Output naming templates (engine template syntax)
const (
	youtubeTemplate   = "youtube_%(title)s.%(ext)s"
	playlistTemplate  = "%(playlist)s/%(playlist_index)s - %(title)s.%(ext)s"
	tiktokTemplate    = "tiktok_%(id)s.%(ext)s"
	instagramTemplate = "instagram_%(id)s.%(ext)s"
	twitterTemplate   = "twitter_%(id)s.%(ext)s"
	audioTemplate     = "audio_%(title)s.%(ext)s"
	genericTemplate   = "%(title)s.%(ext)s"
)

// Merge container for height-capped video+audio downloads
const mergeContainer = "mp4"

// Browser user agent for TikTok fetches
const tiktokUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Detect maps a URL to a platform tag by case-insensitive substring matching.
// It never fails; unrecognized hosts resolve to TagUnknown. The playlist
// marker is checked before falling through to plain youtube.
func Detect(rawURL string) Tag {
	lower := strings.ToLower(rawURL)

	switch {
	case strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be"):
		if strings.Contains(lower, playlistPathMarker) || strings.Contains(lower, playlistParamMarker) {
			return TagYouTubePlaylist
		}
		return TagYouTube
	case strings.Contains(lower, "tiktok.com"):
		return TagTikTok
	case strings.Contains(lower, "instagram.com"):
		return TagInstagram
	case strings.Contains(lower, "twitter.com") || strings.Contains(lower, "x.com"):
		return TagTwitter
	case strings.Contains(lower, "facebook.com") || strings.Contains(lower, "fb.watch"):
		return TagFacebook
	case strings.Contains(lower, "vimeo.com"):
		return TagVimeo
	case strings.Contains(lower, "dailymotion.com"):
		return TagDailymotion
	case strings.Contains(lower, "twitch.tv"):
		return TagTwitch
	default:
		return TagUnknown
	}
}

// Resolver derives engine option profiles from URLs. It is stateless beyond
// its construction parameters and safe for concurrent use.
type Resolver struct {
	outputPath string
	subtitles  SubtitleOptions
}

// NewResolver creates a resolver rooted at outputPath. The subtitle options
// are layered onto every profile of a platform that supports them.
func NewResolver(outputPath string, subtitles SubtitleOptions) *Resolver {
	return &Resolver{
		outputPath: outputPath,
		subtitles:  subtitles,
	}
}

// Resolve builds the option profile for one request. It is a pure function of
// its inputs and never fails; unknown platforms get a generic best-effort
// profile.
func (r *Resolver) Resolve(rawURL string, quality model.Quality, audioOnly bool) Profile {
	tag := Detect(rawURL)

	if audioOnly {
		return r.audioProfile(tag)
	}

	switch tag {
	case TagYouTube:
		return r.youtubeProfile(quality)
	case TagYouTubePlaylist:
		return r.playlistProfile(quality)
	case TagTikTok:
		return r.tiktokProfile()
	case TagInstagram:
		return r.simpleProfile(TagInstagram, instagramTemplate)
	case TagTwitter:
		return r.simpleProfile(TagTwitter, twitterTemplate)
	default:
		return r.genericProfile(tag)
	}
}

// ResolvePlaylist builds the playlist profile regardless of URL markers,
// for forced playlist mode.
func (r *Resolver) ResolvePlaylist(quality model.Quality) Profile {
	return r.playlistProfile(quality)
}

func (r *Resolver) youtubeProfile(quality model.Quality) Profile {
	return Profile{
		Tag:               TagYouTube,
		FormatSelector:    formatSelector(quality),
		OutputTemplate:    filepath.Join(r.outputPath, youtubeTemplate),
		MergeContainer:    mergeContainer,
		SupportsSubtitles: true,
		Subtitles:         r.subtitles,
	}
}

func (r *Resolver) playlistProfile(quality model.Quality) Profile {
	profile := r.youtubeProfile(quality)
	profile.Tag = TagYouTubePlaylist
	profile.OutputTemplate = filepath.Join(r.outputPath, playlistTemplate)
	profile.ContinueOnError = true
	return profile
}

func (r *Resolver) tiktokProfile() Profile {
	// No post-processing: TikTok videos arrive in their final container, and
	// subtitle hooks are stripped along with the other postprocessors.
	return Profile{
		Tag:            TagTikTok,
		FormatSelector: bestFormatSelector,
		OutputTemplate: filepath.Join(r.outputPath, tiktokTemplate),
		ExtraHeaders:   map[string]string{"User-Agent": tiktokUserAgent},
		SkipCertCheck:  true,
	}
}

func (r *Resolver) simpleProfile(tag Tag, template string) Profile {
	return Profile{
		Tag:               tag,
		FormatSelector:    bestFormatSelector,
		OutputTemplate:    filepath.Join(r.outputPath, template),
		SupportsSubtitles: true,
		Subtitles:         r.subtitles,
	}
}

func (r *Resolver) audioProfile(tag Tag) Profile {
	return Profile{
		Tag:               tag,
		FormatSelector:    audioFormatSelector,
		OutputTemplate:    filepath.Join(r.outputPath, audioTemplate),
		ExtractAudio:      true,
		AudioCodec:        AudioCodec,
		AudioBitrate:      AudioBitrate,
		SupportsSubtitles: true,
		Subtitles:         r.subtitles,
	}
}

func (r *Resolver) genericProfile(tag Tag) Profile {
	return Profile{
		Tag:               tag,
		FormatSelector:    bestFormatSelector,
		OutputTemplate:    filepath.Join(r.outputPath, genericTemplate),
		SupportsSubtitles: true,
		Subtitles:         r.subtitles,
	}
}

func formatSelector(quality model.Quality) string {
	if selector, ok := formatSelectors[quality]; ok {
		return selector
	}
	return formatSelectors[model.QualityBest]
}
