package cli

import (
	"fmt"
	"strings"

	"github.com/shogentheone/videograb/internal/model"
)

// Args is the parsed command line for a single-shot invocation.
// An empty URL means interactive mode.
type Args struct {
	URL       string
	Quality   model.Quality
	AudioOnly bool
	Playlist  bool
	NoRetry   bool
	Help      bool
}

// ParseArgs parses `<url> [quality] [flags]`. The first bare token is the
// URL, the second is matched against the quality enum. Unknown flags are
// ignored.
func ParseArgs(argv []string) Args {
	args := Args{Quality: model.QualityBest}

	for _, arg := range argv {
		switch arg {
		case "--audio", "-a":
			args.AudioOnly = true
		case "--playlist", "-p":
			args.Playlist = true
		case "--no-retry":
			args.NoRetry = true
		case "--help", "-h":
			args.Help = true
		default:
			if strings.HasPrefix(arg, "-") {
				continue
			}
			if args.URL == "" {
				args.URL = arg
			} else {
				args.Quality = model.ParseQuality(arg)
			}
		}
	}

	return args
}

// Request builds the download request for a single-shot invocation.
// Already-downloaded URLs are skipped on every path.
func (a Args) Request() model.DownloadRequest {
	return model.DownloadRequest{
		URL:         a.URL,
		Quality:     a.Quality,
		AudioOnly:   a.AudioOnly,
		SkipIfKnown: true,
	}
}

// Usage returns the single-shot help text
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: videograb [url] [quality] [flags]\n\n")
	b.WriteString("Run without arguments for the interactive menu.\n\n")
	b.WriteString("Quality:\n")
	b.WriteString(fmt.Sprintf("  one of %s (default: best)\n\n", qualityTokens()))
	b.WriteString("Flags:\n")
	b.WriteString("  -a, --audio      extract audio as MP3\n")
	b.WriteString("  -p, --playlist   download the whole playlist\n")
	b.WriteString("      --no-retry   fail immediately, no retry attempts\n")
	b.WriteString("  -h, --help       show this help\n")
	return b.String()
}

func qualityTokens() string {
	tokens := make([]string, 0, len(model.Qualities()))
	for _, q := range model.Qualities() {
		tokens = append(tokens, q.String())
	}
	return strings.Join(tokens, ", ")
}
