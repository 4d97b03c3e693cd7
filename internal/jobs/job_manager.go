package jobs

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storeMetricsJob *StoreMetricsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *pebble.DB, metricsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		storeMetricsJob: NewStoreMetricsJob(db, metricsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start store metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storeMetricsJob.Stop()
}
