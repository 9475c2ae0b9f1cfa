package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/matching"
)

// StatsRefreshJobName is the name of the comparable-statistics refresh job
const StatsRefreshJobName = "stats_refresh"

// DefaultStatsRefreshTimeout bounds one refresh run across all segments.
const DefaultStatsRefreshTimeout = 2 * time.Minute

// SegmentSource lists the inventory segments whose statistics are worth
// keeping warm. The property repository implements it.
type SegmentSource interface {
	ActiveSegments(ctx context.Context) ([]matching.Segment, error)
}

// StatsRefreshJob re-aggregates comparable statistics for every active
// tenant+zone+type segment so matching runs hit a warm cache.
type StatsRefreshJob struct {
	segments SegmentSource
	cache    *matching.StatsCache
	logger   *zap.Logger
	timeout  time.Duration
}

func NewStatsRefreshJob(segments SegmentSource, cache *matching.StatsCache, logger *zap.Logger, timeout time.Duration) *StatsRefreshJob {
	if timeout <= 0 {
		timeout = DefaultStatsRefreshTimeout
	}
	return &StatsRefreshJob{
		segments: segments,
		cache:    cache,
		logger:   logger,
		timeout:  timeout,
	}
}

// Run executes one refresh pass. Failing segments are logged and skipped;
// stale cache entries for them stay usable until their TTL expires.
func (j *StatsRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	segments, err := j.segments.ActiveSegments(ctx)
	if err != nil {
		j.logger.Error("failed to list active inventory segments", zap.Error(err))
		return
	}

	refreshed, failed := 0, 0
	for _, seg := range segments {
		if _, err := j.cache.Refresh(ctx, seg.TenantID, seg.Zone, seg.PropertyType); err != nil {
			failed++
			j.logger.Warn("failed to refresh segment statistics",
				zap.String("tenant_id", seg.TenantID.String()),
				zap.String("zone", seg.Zone),
				zap.String("property_type", string(seg.PropertyType)),
				zap.Error(err))
			continue
		}
		refreshed++
	}

	j.logger.Info("comparable statistics refresh completed",
		zap.Int("segments_refreshed", refreshed),
		zap.Int("segments_failed", failed),
		zap.Duration("duration", time.Since(start)))
}

// RegisterStatsRefreshJob registers the refresh job with the scheduler.
func RegisterStatsRefreshJob(scheduler *Scheduler, segments SegmentSource, cache *matching.StatsCache, logger *zap.Logger, cronExpr string) error {
	job := NewStatsRefreshJob(segments, cache, logger, DefaultStatsRefreshTimeout)
	return scheduler.AddJob(StatsRefreshJobName, cronExpr, job.Run)
}
