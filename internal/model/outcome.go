package model

// OutcomeStatus represents the terminal result of one download attempt
type OutcomeStatus string

const (
	// StatusSuccess means the download finished and the file was written
	StatusSuccess OutcomeStatus = "success"

	// StatusSkipped means history reported a prior success, so the engine was never invoked
	StatusSkipped OutcomeStatus = "skipped"

	// StatusFailed means all attempts were exhausted or a non-retryable error occurred
	StatusFailed OutcomeStatus = "failed"
)

// String returns the string representation of OutcomeStatus
func (os OutcomeStatus) String() string {
	return string(os)
}

// IsSuccess returns true if the download completed
func (os OutcomeStatus) IsSuccess() bool {
	return os == StatusSuccess
}

// IsSkipped returns true if the download was short-circuited by history
func (os OutcomeStatus) IsSkipped() bool {
	return os == StatusSkipped
}

// IsFailed returns true if the download failed permanently
func (os OutcomeStatus) IsFailed() bool {
	return os == StatusFailed
}

// DownloadOutcome is produced once per DownloadRequest and never mutated
// after creation.
type DownloadOutcome struct {
	URL          string
	Status       OutcomeStatus
	Title        string // resolved title, empty if unknown
	OutputPath   string // path to the downloaded file, empty unless success
	ErrorSummary string // bounded human-readable failure description
	Note         string // extra context, e.g. subtitles omitted after rate limit
}
