package download

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shogentheone/videograb/internal/model"
)

// Summary text for URLs never dispatched because the batch was cancelled
const cancelledSummary = "cancelled before start"

// Coordinator fans a list of URLs out across a bounded worker pool and
// aggregates a summary. Each task returns its own outcome value; results are
// merged after all tasks settle, so no shared accumulator is touched from
// multiple goroutines.
type Coordinator struct {
	downloader Downloader
	maxWorkers int
	log        *zap.Logger
}

// NewCoordinator creates a batch coordinator with the given worker bound
func NewCoordinator(downloader Downloader, maxWorkers int, log *zap.Logger) *Coordinator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Coordinator{
		downloader: downloader,
		maxWorkers: maxWorkers,
		log:        log,
	}
}

// Run processes the URLs and returns a summary whose counters always
// partition the result sequence, under both concurrent and sequential modes.
// Cancellation stops dispatching new tasks; in-flight ones finish or fail
// naturally.
func (c *Coordinator) Run(ctx context.Context, urls []string, quality model.Quality, audioOnly, concurrent bool) model.BatchSummary {
	runID := uuid.NewString()
	total := len(urls)
	results := make([]model.DownloadOutcome, total)

	c.log.Info("batch started",
		zap.String("run_id", runID),
		zap.Int("total", total),
		zap.Bool("concurrent", concurrent))

	if concurrent && total > 1 {
		c.runConcurrent(ctx, urls, quality, audioOnly, results)
	} else {
		c.runSequential(ctx, urls, quality, audioOnly, results)
	}

	summary := model.BatchSummary{
		ID:      runID,
		Total:   total,
		Results: results,
	}
	for _, outcome := range results {
		switch outcome.Status {
		case model.StatusSuccess:
			summary.Successful++
		case model.StatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	c.log.Info("batch finished",
		zap.String("run_id", runID),
		zap.Int("successful", summary.Successful),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))

	return summary
}

// runConcurrent dispatches up to min(maxWorkers, len(urls)) tasks in parallel
func (c *Coordinator) runConcurrent(ctx context.Context, urls []string, quality model.Quality, audioOnly bool, results []model.DownloadOutcome) {
	workers := c.maxWorkers
	if workers > len(urls) {
		workers = len(urls)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				results[index] = c.execute(ctx, urls[index], quality, audioOnly)
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(urls); next++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	// URLs never dispatched still need an outcome so the counts partition
	for i := next; i < len(urls); i++ {
		if results[i].Status == "" {
			results[i] = cancelledOutcome(urls[i])
		}
	}
}

func (c *Coordinator) runSequential(ctx context.Context, urls []string, quality model.Quality, audioOnly bool, results []model.DownloadOutcome) {
	for i, url := range urls {
		if ctx.Err() != nil {
			results[i] = cancelledOutcome(url)
			continue
		}
		results[i] = c.execute(ctx, url, quality, audioOnly)
	}
}

// execute wraps one downloader call so a panic in a single task is converted
// into a failed outcome instead of aborting the batch.
func (c *Coordinator) execute(ctx context.Context, url string, quality model.Quality, audioOnly bool) (outcome model.DownloadOutcome) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("download task panicked",
				zap.String("url", url), zap.Any("panic", r))
			outcome = model.DownloadOutcome{
				URL:          url,
				Status:       model.StatusFailed,
				ErrorSummary: fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	return c.downloader.Execute(ctx, model.DownloadRequest{
		URL:         strings.TrimSpace(url),
		Quality:     quality,
		AudioOnly:   audioOnly,
		SkipIfKnown: true,
	})
}

func cancelledOutcome(url string) model.DownloadOutcome {
	return model.DownloadOutcome{
		URL:          url,
		Status:       model.StatusFailed,
		ErrorSummary: cancelledSummary,
	}
}
