package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/shogentheone/videograb/internal/model"
	"github.com/shogentheone/videograb/internal/platform"
)

// Engine tuning constants
const (
	defaultSocketTimeout    = 30.0 // seconds, prevents hanging on network issues
	defaultProgressInterval = 500 * time.Millisecond

	subtitleConvertFormat = "srt"
	headerSeparator       = ":"
)

// YTDLP drives downloads through the yt-dlp binary. It is stateless and safe
// for concurrent fetches.
type YTDLP struct {
	progressInterval time.Duration
}

// NewYTDLP creates the default extraction engine
func NewYTDLP() *YTDLP {
	return &YTDLP{
		progressInterval: defaultProgressInterval,
	}
}

// Fetch runs one download, translating the option profile into a yt-dlp
// command. The context cancels the underlying process.
func (e *YTDLP) Fetch(ctx context.Context, url string, profile platform.Profile, observer ProgressObserver) (*Result, error) {
	dl := ytdlp.New().
		ForceOverwrites().
		Format(profile.FormatSelector).
		Output(profile.OutputTemplate).
		SocketTimeout(defaultSocketTimeout)

	if profile.MergeContainer != "" {
		dl.MergeOutputFormat(profile.MergeContainer)
	}

	if profile.ExtractAudio {
		dl.ExtractAudio().
			AudioFormat(profile.AudioCodec).
			AudioQuality(profile.AudioBitrate)
	}

	if profile.SubtitlesEnabled() {
		dl.WriteSubs().
			WriteAutoSubs().
			SubLangs(profile.Subtitles.Languages).
			ConvertSubs(subtitleConvertFormat)
		if profile.Subtitles.Embed {
			dl.EmbedSubs()
		}
	}

	for field, value := range profile.ExtraHeaders {
		dl.AddHeaders(field + headerSeparator + value)
	}

	if profile.SkipCertCheck {
		dl.NoCheckCertificates()
	}

	if profile.ContinueOnError {
		// Playlist mode: one entry's failure must not abort the rest
		dl.IgnoreErrors()
	} else {
		dl.NoPlaylist()
	}

	if observer != nil {
		dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			observer.OnProgress(snapshotFrom(url, &update))
		})
	}

	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("engine fetch failed: %w", err)
	}

	return resultFrom(res), nil
}

// Inspect extracts metadata for one URL without downloading. Playlists are
// enumerated in flat mode so the preview stays cheap.
func (e *YTDLP) Inspect(ctx context.Context, url string) (*Info, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		FlatPlaylist().
		SocketTimeout(defaultSocketTimeout)

	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("engine inspect failed: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("engine inspect returned no output")
	}

	return parseInfo([]byte(res.Stdout))
}

// infoPayload mirrors the fields of the engine's JSON info dict that the
// preview consumes.
type infoPayload struct {
	Type           string            `json:"_type"`
	Title          string            `json:"title"`
	Uploader       string            `json:"uploader"`
	Duration       float64           `json:"duration"`
	ViewCount      int64             `json:"view_count"`
	Filesize       int64             `json:"filesize"`
	FilesizeApprox int64             `json:"filesize_approx"`
	Resolution     string            `json:"resolution"`
	PlaylistCount  int               `json:"playlist_count"`
	Entries        []json.RawMessage `json:"entries"`
}

// parseInfo decodes a single JSON info dict into an Info
func parseInfo(data []byte) (*Info, error) {
	var payload infoPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode media info: %w", err)
	}

	if payload.Type == "playlist" {
		count := payload.PlaylistCount
		if count == 0 {
			count = len(payload.Entries)
		}
		return &Info{
			IsPlaylist: true,
			Title:      payload.Title,
			Uploader:   payload.Uploader,
			EntryCount: count,
		}, nil
	}

	size := payload.Filesize
	if size == 0 {
		size = payload.FilesizeApprox
	}

	return &Info{
		Title:       payload.Title,
		Uploader:    payload.Uploader,
		DurationSec: int(payload.Duration),
		Views:       payload.ViewCount,
		SizeApprox:  size,
		Resolution:  payload.Resolution,
	}, nil
}

// resultFrom extracts title and output filename from the engine's report
func resultFrom(res *ytdlp.Result) *Result {
	result := &Result{}
	if res == nil {
		return result
	}

	info, err := res.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return result
	}

	result.Entries = len(info)
	if info[0].Title != nil {
		result.Title = *info[0].Title
	}
	if info[0].Filename != nil {
		result.Filename = *info[0].Filename
	}
	return result
}

// snapshotFrom converts a yt-dlp progress update into the observer payload
func snapshotFrom(url string, update *ytdlp.ProgressUpdate) model.ProgressSnapshot {
	snapshot := model.ProgressSnapshot{
		URL:             url,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETASec:          -1,
	}

	if update.TotalBytes > 0 {
		snapshot.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			snapshot.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if eta := update.ETA(); eta > 0 {
		snapshot.ETASec = int(eta.Seconds())
	}

	return snapshot
}
