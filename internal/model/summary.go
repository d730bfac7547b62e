package model

// BatchSummary aggregates the results of one batch run. The coordinator owns
// it for the duration of the run; the final state is immutable.
type BatchSummary struct {
	ID         string // correlation id for logs
	Total      int
	Successful int
	Skipped    int
	Failed     int
	Results    []DownloadOutcome // ordered by input position
}

// CountsConsistent reports whether the counters partition the result sequence
func (bs BatchSummary) CountsConsistent() bool {
	return bs.Successful+bs.Skipped+bs.Failed == bs.Total && len(bs.Results) == bs.Total
}

// PlaylistResult summarizes a continue-on-error playlist download: one entry's
// permanent failure does not abort the rest, so the result is an aggregate
// count rather than a single outcome.
type PlaylistResult struct {
	Title     string
	Completed int
	Total     int
}
