package download

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shogentheone/videograb/internal/config"
	"github.com/shogentheone/videograb/internal/engine"
	"github.com/shogentheone/videograb/internal/history"
	"github.com/shogentheone/videograb/internal/model"
	"github.com/shogentheone/videograb/internal/platform"
	"github.com/shogentheone/videograb/internal/subtitle"
)

// Outcome annotations
const (
	// NoteSubtitlesOmitted marks a success where the subtitle rate-limit
	// fallback dropped subtitles to save the download
	NoteSubtitlesOmitted = "subtitles omitted after rate limit"

	invalidURLSummary = "invalid URL format"
	inFlightSummary   = "already being downloaded"
	failedTitle       = "Failed"
)

// Audio extraction changes the container, so the reported filename needs its
// extension translated
const audioOutputExt = ".mp3"

// Service is the retrying downloader. It drives one URL through the
// extraction engine with bounded retries, exponential backoff, and a
// subtitle-specific degrade-and-retry fallback.
type Service struct {
	settings *config.Settings
	resolver *platform.Resolver
	engine   engine.Engine
	history  history.Store
	observer engine.ProgressObserver
	log      *zap.Logger

	sleep func(ctx context.Context, d time.Duration) error

	filesMutex   sync.Mutex
	sessionFiles []string
}

// NewService creates a retrying downloader. The observer may be nil when no
// progress reporting is wanted.
func NewService(settings *config.Settings, resolver *platform.Resolver, eng engine.Engine, store history.Store, observer engine.ProgressObserver, log *zap.Logger) *Service {
	return &Service{
		settings: settings,
		resolver: resolver,
		engine:   eng,
		history:  store,
		observer: observer,
		log:      log,
		sleep:    sleepContext,
	}
}

// Execute drives one download request to a terminal outcome. Per-URL failures
// are recovered here and converted into failed outcomes; they never propagate
// as errors.
func (s *Service) Execute(ctx context.Context, req model.DownloadRequest) model.DownloadOutcome {
	if !platform.ValidateURL(req.URL) {
		return model.DownloadOutcome{
			URL:          req.URL,
			Status:       model.StatusFailed,
			ErrorSummary: invalidURLSummary,
		}
	}

	if req.SkipIfKnown {
		if s.history.IsDownloaded(req.URL) {
			s.log.Info("skipping previously downloaded url", zap.String("url", req.URL))
			return model.DownloadOutcome{URL: req.URL, Status: model.StatusSkipped}
		}

		// Claim before start so the same URL dispatched twice in one batch
		// cannot both pass the check above.
		if !s.history.Claim(req.URL) {
			return model.DownloadOutcome{URL: req.URL, Status: model.StatusSkipped, Note: inFlightSummary}
		}
		defer s.history.Release(req.URL)
	}

	profile := s.resolver.Resolve(req.URL, req.Quality, req.AudioOnly)

	result, note, err := s.fetchWithRetry(ctx, req.URL, profile)
	if err != nil {
		summary := engine.Summary(err, engine.MaxErrorSummaryLength)
		s.log.Warn("download failed",
			zap.String("url", req.URL),
			zap.String("platform", profile.Tag.String()),
			zap.String("error", summary))
		s.record(req.URL, failedTitle, "", profile.Tag, false)
		return model.DownloadOutcome{
			URL:          req.URL,
			Status:       model.StatusFailed,
			ErrorSummary: summary,
		}
	}

	outputPath := s.finalizePath(result.Filename, req.AudioOnly)
	if outputPath != "" {
		s.trackSessionFile(outputPath)
	}

	if profile.SubtitlesEnabled() && note == "" && outputPath != "" {
		if _, err := subtitle.ConvertSidecars(outputPath); err != nil {
			s.log.Warn("failed to convert subtitles to transcript",
				zap.String("url", req.URL), zap.Error(err))
		}
	}

	s.record(req.URL, result.Title, outputPath, profile.Tag, true)
	s.log.Info("download succeeded",
		zap.String("url", req.URL),
		zap.String("platform", profile.Tag.String()),
		zap.String("output", outputPath))

	return model.DownloadOutcome{
		URL:        req.URL,
		Status:     model.StatusSuccess,
		Title:      result.Title,
		OutputPath: outputPath,
		Note:       note,
	}
}

// Preview fetches metadata for a URL without downloading it. The caller
// decides whether a preview failure blocks anything; here it is just an error.
func (s *Service) Preview(ctx context.Context, url string) (*engine.Info, error) {
	if !platform.ValidateURL(url) {
		return nil, ErrInvalidURL
	}

	info, err := s.engine.Inspect(ctx, url)
	if err != nil {
		s.log.Warn("failed to fetch media info", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return info, nil
}

// ExecutePlaylist downloads an entire playlist in continue-on-error mode:
// one entry's permanent failure does not abort the remaining entries.
func (s *Service) ExecutePlaylist(ctx context.Context, url string, quality model.Quality) (model.PlaylistResult, error) {
	if !platform.ValidateURL(url) {
		return model.PlaylistResult{}, ErrInvalidURL
	}

	profile := s.resolver.ResolvePlaylist(quality)

	result, _, err := s.fetchWithRetry(ctx, url, profile)
	if err != nil {
		s.record(url, failedTitle, "", platform.TagYouTubePlaylist, false)
		return model.PlaylistResult{}, err
	}

	s.record(url, result.Title, "", platform.TagYouTubePlaylist, true)

	// The engine reports only the entries it completed; failed entries were
	// skipped over by continue-on-error mode.
	return model.PlaylistResult{
		Title:     result.Title,
		Completed: result.Entries,
		Total:     result.Entries,
	}, nil
}

// SessionFiles returns the files downloaded during this process lifetime
func (s *Service) SessionFiles() []string {
	s.filesMutex.Lock()
	defer s.filesMutex.Unlock()

	files := make([]string, len(s.sessionFiles))
	copy(files, s.sessionFiles)
	return files
}

// fetchWithRetry invokes the engine up to MaxRetries times with exponential
// backoff. A subtitle rate limit gets exactly one extra attempt with
// subtitles disabled, consuming no slot from the main retry budget.
func (s *Service) fetchWithRetry(ctx context.Context, url string, profile platform.Profile) (*engine.Result, string, error) {
	maxRetries := s.settings.MaxRetries
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := s.engine.Fetch(ctx, url, profile, s.observer)
		if err == nil {
			return result, "", nil
		}

		if engine.IsSubtitleRateLimit(err) {
			s.log.Warn("subtitle fetch rate limited, retrying without subtitles",
				zap.String("url", url))
			result, err := s.engine.Fetch(ctx, url, profile.WithoutSubtitles(), s.observer)
			if err == nil {
				return result, NoteSubtitlesOmitted, nil
			}
			return nil, "", err
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}

		if attempt < maxRetries-1 {
			delay := backoffDelay(s.settings.BackoffBase(), attempt)
			s.log.Info("retrying after backoff",
				zap.String("url", url),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay))
			if err := s.sleep(ctx, delay); err != nil {
				return nil, "", err
			}
		}
	}

	return nil, "", lastErr
}

// finalizePath derives the final output path from the engine's reported
// filename: translate the extension if audio extraction changed the
// container, then sanitize the basename.
func (s *Service) finalizePath(reported string, audioOnly bool) string {
	if reported == "" {
		return ""
	}

	if audioOnly {
		ext := filepath.Ext(reported)
		reported = strings.TrimSuffix(reported, ext) + audioOutputExt
	}

	dir := filepath.Dir(reported)
	base := platform.SanitizeFilename(filepath.Base(reported), s.settings.MaxFilenameLength)
	return filepath.Join(dir, base)
}

// record appends one history entry; persistence failures are logged, never
// fatal.
func (s *Service) record(url, title, outputPath string, tag platform.Tag, success bool) {
	entry := model.HistoryEntry{
		URL:       url,
		Title:     title,
		Filepath:  outputPath,
		Platform:  tag.String(),
		Timestamp: time.Now(),
		Success:   success,
	}
	if err := s.history.Add(entry); err != nil {
		s.log.Error("failed to record download history",
			zap.String("url", url), zap.Error(err))
	}
}

func (s *Service) trackSessionFile(path string) {
	s.filesMutex.Lock()
	defer s.filesMutex.Unlock()
	s.sessionFiles = append(s.sessionFiles, path)
}

// backoffDelay computes base * 2^attempt for a zero-based attempt index
func backoffDelay(base time.Duration, attempt int) time.Duration {
	return base << uint(attempt)
}

// sleepContext waits for the delay or the context, whichever ends first
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
