package engine

import (
	"context"

	"github.com/shogentheone/videograb/internal/model"
	"github.com/shogentheone/videograb/internal/platform"
)

// Result carries the metadata an engine fetch reports back on success
type Result struct {
	Title    string
	Filename string // engine's reported output file, pre-sanitization
	Entries  int    // number of extracted entries, >1 for playlists
}

// Info is the metadata an engine reports without downloading anything.
// Unknown numeric fields are zero; unknown strings are empty.
type Info struct {
	IsPlaylist  bool
	Title       string
	Uploader    string
	DurationSec int
	Views       int64
	SizeApprox  int64 // estimated bytes, 0 when the source reports none
	Resolution  string
	EntryCount  int // playlist only
}

// ProgressObserver receives progress snapshots during a fetch. Implementations
// must be safe for calls from the fetch goroutine.
type ProgressObserver interface {
	OnProgress(snapshot model.ProgressSnapshot)
}

// Engine is the extraction engine contract. Fetch performs network retrieval,
// format negotiation, and optional post-processing for one URL. Inspect
// extracts metadata only.
type Engine interface {
	Fetch(ctx context.Context, url string, profile platform.Profile, observer ProgressObserver) (*Result, error)
	Inspect(ctx context.Context, url string) (*Info, error)
}
