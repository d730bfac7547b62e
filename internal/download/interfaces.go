package download

import (
	"context"

	"github.com/shogentheone/videograb/internal/model"
)

// Downloader drives a single download request to a terminal outcome.
// Implementations never return errors: per-URL failures are converted into
// failed outcomes at this boundary.
type Downloader interface {
	Execute(ctx context.Context, req model.DownloadRequest) model.DownloadOutcome
	ExecutePlaylist(ctx context.Context, url string, quality model.Quality) (model.PlaylistResult, error)
}
