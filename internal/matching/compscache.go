package matching

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

// minComparablePopulation is the smallest segment size considered a
// meaningful price reference. Below it the coherence dimension stays neutral.
const minComparablePopulation = 3

// DefaultStatsTTL is how long a comparable-statistics entry stays fresh.
const DefaultStatsTTL = 10 * time.Minute

// Segment identifies one tenant+zone+type slice of inventory.
type Segment struct {
	TenantID     uuid.UUID           `gorm:"column:tenant_id"`
	Zone         string              `gorm:"column:zone"`
	PropertyType domain.PropertyType `gorm:"column:property_type"`
}

// ZoneStats aggregates the comparable listings of one tenant+zone+type segment.
type ZoneStats struct {
	Count          int
	AvgPrice       float64
	AvgPricePerSqm float64
}

// StatsSource loads comparable statistics from storage.
type StatsSource interface {
	ComparableStats(ctx context.Context, tenantID uuid.UUID, zone string, propertyType domain.PropertyType) (ZoneStats, error)
}

type statsKey struct {
	tenantID     uuid.UUID
	zone         string
	propertyType domain.PropertyType
}

type statsEntry struct {
	stats     ZoneStats
	expiresAt time.Time
}

// StatsCache is a TTL cache over a StatsSource. Entries refresh lazily on
// miss or expiry; the job scheduler can force-refresh hot segments.
type StatsCache struct {
	source StatsSource
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[statsKey]statsEntry
}

// NewStatsCache creates a cache with the given TTL. A non-positive TTL falls
// back to DefaultStatsTTL.
func NewStatsCache(source StatsSource, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsCache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[statsKey]statsEntry),
	}
}

func cacheKey(tenantID uuid.UUID, zone string, propertyType domain.PropertyType) statsKey {
	return statsKey{
		tenantID:     tenantID,
		zone:         strings.ToLower(strings.TrimSpace(zone)),
		propertyType: propertyType,
	}
}

// Get returns the cached statistics for a segment, loading them from the
// source when missing or expired.
func (c *StatsCache) Get(ctx context.Context, tenantID uuid.UUID, zone string, propertyType domain.PropertyType) (ZoneStats, error) {
	key := cacheKey(tenantID, zone, propertyType)

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.stats, nil
	}

	return c.Refresh(ctx, tenantID, zone, propertyType)
}

// Refresh reloads a segment from the source regardless of freshness.
func (c *StatsCache) Refresh(ctx context.Context, tenantID uuid.UUID, zone string, propertyType domain.PropertyType) (ZoneStats, error) {
	stats, err := c.source.ComparableStats(ctx, tenantID, zone, propertyType)
	if err != nil {
		return ZoneStats{}, err
	}

	c.mu.Lock()
	c.entries[cacheKey(tenantID, zone, propertyType)] = statsEntry{
		stats:     stats,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()

	return stats, nil
}

// Len returns the number of cached segments.
func (c *StatsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
