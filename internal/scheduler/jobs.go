package scheduler

import (
	"context"
	"time"

	"github.com/patrimonio/wealth-backend/internal/service"
)

// SnapshotJob captures the daily portfolio snapshot.
type SnapshotJob struct {
	Snapshots *service.SnapshotService
}

// Name implements Job.
func (j SnapshotJob) Name() string { return "portfolio-snapshot" }

// Run implements Job.
func (j SnapshotJob) Run() error {
	_, err := j.Snapshots.CaptureSnapshot()
	return err
}

// QuoteRefreshJob refreshes stored security prices.
type QuoteRefreshJob struct {
	Quotes  *service.QuoteService
	Timeout time.Duration
}

// Name implements Job.
func (j QuoteRefreshJob) Name() string { return "quote-refresh" }

// Run implements Job.
func (j QuoteRefreshJob) Run() error {
	timeout := j.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := j.Quotes.RefreshQuotes(ctx)
	return err
}
