package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StalePendingWatchJob periodically scans the pending pool and reports orders
// that stayed unclaimed beyond the configured threshold. It never mutates
// orders; escalation stays a human decision.
type StalePendingWatchJob struct {
	uowFactory ports.UnitOfWorkFactory
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalePendingWatchJob creates a new watch job over the pending pool.
// Orders older than threshold are logged on every run.
func NewStalePendingWatchJob(
	uowFactory ports.UnitOfWorkFactory,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePendingWatchJob {
	return &StalePendingWatchJob{
		uowFactory: uowFactory,
		threshold:  threshold,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_pending_watch_job"),
	}
}

// Start begins the watch job to run at the top of every minute.
func (j *StalePendingWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale pending watch run failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending watch job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the watch job.
func (j *StalePendingWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending watch job stopped")
}

func (j *StalePendingWatchJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	pending, err := uow.OrderRepository().GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	deadline := time.Now().UTC().Add(-j.threshold)
	stale := 0

	for _, o := range pending {
		if o.CreatedAt().After(deadline) {
			continue
		}

		stale++
		j.logger.WarnContext(ctx, "Order stayed in pending beyond threshold",
			"order_id", o.ID().String(),
			"is_premium", o.IsPremium(),
			"waiting_for", time.Since(o.CreatedAt()).Round(time.Second).String(),
		)
	}

	if stale > 0 {
		j.logger.InfoContext(ctx, "Stale pending watch run finished",
			"pending_total", len(pending),
			"stale", stale,
		)
	}

	return nil
}
