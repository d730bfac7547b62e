package platform

// SubtitleOptions describes subtitle acquisition layered onto a profile
type SubtitleOptions struct {
	Enabled   bool
	Languages string // comma-separated language codes, or "all"
	Embed     bool
}

// Profile is the immutable option record handed to the extraction engine.
// One profile is built per request by the per-platform constructors and is
// never mutated afterwards; overlays return modified copies.
type Profile struct {
	Tag             Tag
	FormatSelector  string
	OutputTemplate  string
	MergeContainer  string // empty when no merge step is wanted
	ExtractAudio    bool
	AudioCodec      string
	AudioBitrate    string
	ExtraHeaders    map[string]string
	SkipCertCheck   bool
	ContinueOnError bool // playlist mode: keep going past per-entry failures

	SupportsSubtitles bool
	Subtitles         SubtitleOptions
}

// SubtitlesEnabled reports whether this fetch will request subtitles
func (p Profile) SubtitlesEnabled() bool {
	return p.SupportsSubtitles && p.Subtitles.Enabled
}

// WithoutSubtitles returns a copy of the profile with subtitle acquisition
// disabled. Used for the degrade-and-retry path after a subtitle rate limit.
func (p Profile) WithoutSubtitles() Profile {
	copied := p
	copied.Subtitles = SubtitleOptions{}
	return copied
}
