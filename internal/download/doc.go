package download

// Package download implements the orchestration core: the retrying downloader
// that drives a single URL through the extraction engine with bounded retries,
// exponential backoff, and a subtitle degrade-and-retry fallback, plus the
// batch coordinator that fans URLs out across a bounded worker pool and
// aggregates a summary.
