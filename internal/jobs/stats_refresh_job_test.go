package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/matching"
)

type fakeSegmentSource struct {
	segments []matching.Segment
	err      error
}

func (f *fakeSegmentSource) ActiveSegments(ctx context.Context) ([]matching.Segment, error) {
	return f.segments, f.err
}

type countingStatsSource struct {
	calls int
	fail  map[string]bool
}

func (c *countingStatsSource) ComparableStats(ctx context.Context, tenantID uuid.UUID, zone string, propertyType domain.PropertyType) (matching.ZoneStats, error) {
	c.calls++
	if c.fail[zone] {
		return matching.ZoneStats{}, errors.New("aggregate failed")
	}
	return matching.ZoneStats{Count: 5, AvgPrice: 20_000_000}, nil
}

func TestStatsRefreshJob_WarmsAllSegments(t *testing.T) {
	tenantID := uuid.New()
	source := &countingStatsSource{}
	cache := matching.NewStatsCache(source, time.Minute)
	segments := &fakeSegmentSource{segments: []matching.Segment{
		{TenantID: tenantID, Zone: "Cocody", PropertyType: domain.PropertyTypeApartment},
		{TenantID: tenantID, Zone: "Plateau", PropertyType: domain.PropertyTypeOffice},
	}}

	job := NewStatsRefreshJob(segments, cache, zap.NewNop(), time.Second)
	job.Run()

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, 2, cache.Len())
}

func TestStatsRefreshJob_SkipsFailingSegments(t *testing.T) {
	tenantID := uuid.New()
	source := &countingStatsSource{fail: map[string]bool{"Yopougon": true}}
	cache := matching.NewStatsCache(source, time.Minute)
	segments := &fakeSegmentSource{segments: []matching.Segment{
		{TenantID: tenantID, Zone: "Cocody", PropertyType: domain.PropertyTypeApartment},
		{TenantID: tenantID, Zone: "Yopougon", PropertyType: domain.PropertyTypeHouse},
	}}

	job := NewStatsRefreshJob(segments, cache, zap.NewNop(), time.Second)
	job.Run()

	assert.Equal(t, 2, source.calls)
	assert.Equal(t, 1, cache.Len())
}

func TestStatsRefreshJob_SegmentListingFailure(t *testing.T) {
	source := &countingStatsSource{}
	cache := matching.NewStatsCache(source, time.Minute)
	segments := &fakeSegmentSource{err: errors.New("db down")}

	job := NewStatsRefreshJob(segments, cache, zap.NewNop(), time.Second)
	job.Run()

	assert.Zero(t, source.calls)
	assert.Zero(t, cache.Len())
}
