package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/principal"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsSnapshotJob *StatsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getStatsHandler queries.GetStatsQueryHandler,
	system principal.Principal,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsSnapshotJob: NewStatsSnapshotJob(getStatsHandler, system, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsSnapshotJob.Stop()
}

// StatsSnapshot exposes the cached dashboard stats.
func (jm *JobManager) StatsSnapshot() *StatsSnapshot {
	return jm.statsSnapshotJob.Snapshot()
}

// GetStatsHandler returns the snapshot-backed stats handler for serving
// dashboard reads.
func (jm *JobManager) GetStatsHandler() *StatsSnapshotJob {
	return jm.statsSnapshotJob
}
