package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingWatchJob *StalePendingWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	stalePendingThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingWatchJob: NewStalePendingWatchJob(uowFactory, stalePendingThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingWatchJob.Stop()
}
