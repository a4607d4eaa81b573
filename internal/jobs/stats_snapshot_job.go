// Package jobs contains the scheduled background work. The only job today
// is the dashboard stats snapshot refresh.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StatsSnapshot is the cached dashboard payload with its capture time.
// Readers tolerate up to one refresh interval of staleness.
type StatsSnapshot struct {
	Stats      queries.GetStatsQueryResponse
	CapturedAt time.Time
}

// StatsSnapshotJob periodically recomputes the system-wide shipment stats so
// dashboard reads never hit the aggregate query on the hot path.
type StatsSnapshotJob struct {
	handler queries.GetStatsQueryHandler
	system  principal.Principal
	cron    *cron.Cron
	logger  *slog.Logger

	mu       sync.RWMutex
	snapshot *StatsSnapshot
}

// NewStatsSnapshotJob creates the stats refresh job. The system principal
// must hold the admin role because the stats query is admin-only.
func NewStatsSnapshotJob(
	handler queries.GetStatsQueryHandler,
	system principal.Principal,
	logger *slog.Logger,
) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler: handler,
		system:  system,
		cron:    cron.New(),
		logger:  logger.With("component", "stats_snapshot_job"),
	}
}

// Start refreshes the snapshot once immediately, then every 30 seconds.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", func() {
		j.refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.refresh(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (refreshing every 30s)")
	return nil
}

// Stop stops the refresh schedule. The last snapshot stays readable.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}

// Snapshot returns the latest captured stats, or nil before the first
// successful refresh.
func (j *StatsSnapshotJob) Snapshot() *StatsSnapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.snapshot
}

// Handle serves the stats query from the cached snapshot, so dashboard
// reads stay off the aggregate query. Before the first refresh completes
// it falls back to the live query. The caller's own authorization applies;
// the system principal is used only for scheduled refreshes.
func (j *StatsSnapshotJob) Handle(
	ctx context.Context,
	query queries.GetStatsQuery,
) (queries.GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return queries.GetStatsQueryResponse{}, err
	}

	if !query.Actor().IsAdmin() {
		return queries.GetStatsQueryResponse{}, errs.NewNotAuthorizedError(query.Actor().Role().String(), "getStats")
	}

	if snap := j.Snapshot(); snap != nil {
		return snap.Stats, nil
	}
	return j.handler.Handle(ctx, query)
}

func (j *StatsSnapshotJob) refresh(ctx context.Context) {
	query, err := queries.NewGetStatsQuery(j.system)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot refresh failed", "error", err)
		return
	}

	stats, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot refresh failed", "error", err)
		return
	}

	j.mu.Lock()
	j.snapshot = &StatsSnapshot{Stats: stats, CapturedAt: time.Now().UTC()}
	j.mu.Unlock()
}
