package repository

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/testutil"
)

func TestPropertyRepositoryTenantIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewPropertyRepository(db)

	tenantA := testutil.CreateTestTenant(t, db, "agency-a")
	tenantB := testutil.CreateTestTenant(t, db, "agency-b")

	mine := testutil.CreateTestProperty(t, db, tenantA.ID, nil)
	theirs := testutil.CreateTestProperty(t, db, tenantB.ID, nil)

	ctxA := testutil.TenantContext(tenantA.ID)

	t.Run("list only returns own tenant", func(t *testing.T) {
		properties, total, err := repo.List(ctxA, 1, 50, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, properties, 1)
		assert.Equal(t, mine.ID, properties[0].ID)
	})

	t.Run("get by id cannot cross tenants", func(t *testing.T) {
		_, err := repo.GetByID(ctxA, theirs.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("no tenant in context matches nothing", func(t *testing.T) {
		properties, total, err := repo.List(context.Background(), 1, 50, nil)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, properties)
	})
}

func TestListCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewPropertyRepository(db)
	tenant := testutil.CreateTestTenant(t, db, "agency")
	ctx := testutil.TenantContext(tenant.ID)

	available := testutil.CreateTestProperty(t, db, tenant.ID, nil)
	reserved := testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.Status = domain.PropertyStatusReserved
	})
	rented := testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.Status = domain.PropertyStatusRented
	})
	testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.Status = domain.PropertyStatusSold
	})
	testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.Status = domain.PropertyStatusArchived
	})

	t.Run("purchase deals match available and reserved", func(t *testing.T) {
		candidates, err := repo.ListCandidates(ctx, matching.Criteria{DealType: domain.DealTypeAchat})
		require.NoError(t, err)
		ids := candidateIDs(candidates)
		assert.ElementsMatch(t, []string{available.ID.String(), reserved.ID.String()}, ids)
	})

	t.Run("management deals also match rented", func(t *testing.T) {
		candidates, err := repo.ListCandidates(ctx, matching.Criteria{DealType: domain.DealTypeGestion})
		require.NoError(t, err)
		ids := candidateIDs(candidates)
		assert.ElementsMatch(t,
			[]string{available.ID.String(), reserved.ID.String(), rented.ID.String()}, ids)
	})

	t.Run("coarse price band excludes far-off listings", func(t *testing.T) {
		cheap := testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
			p.Price = 1_000_000
		})
		expensive := testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
			p.Price = 90_000_000
		})

		budgetMin, budgetMax := 20_000_000.0, 30_000_000.0
		candidates, err := repo.ListCandidates(ctx, matching.Criteria{
			DealType:  domain.DealTypeAchat,
			BudgetMin: &budgetMin,
			BudgetMax: &budgetMax,
		})
		require.NoError(t, err)

		ids := candidateIDs(candidates)
		assert.NotContains(t, ids, cheap.ID.String())
		assert.NotContains(t, ids, expensive.ID.String())
		assert.Contains(t, ids, available.ID.String())
	})

	t.Run("results come back in a stable order", func(t *testing.T) {
		candidates, err := repo.ListCandidates(ctx, matching.Criteria{DealType: domain.DealTypeAchat})
		require.NoError(t, err)
		ids := candidateIDs(candidates)
		assert.True(t, sort.StringsAreSorted(ids))

		again, err := repo.ListCandidates(ctx, matching.Criteria{DealType: domain.DealTypeAchat})
		require.NoError(t, err)
		assert.Equal(t, ids, candidateIDs(again))
	})

	t.Run("candidates never cross tenants", func(t *testing.T) {
		other := testutil.CreateTestTenant(t, db, "other-agency")
		foreign := testutil.CreateTestProperty(t, db, other.ID, nil)

		candidates, err := repo.ListCandidates(ctx, matching.Criteria{DealType: domain.DealTypeAchat})
		require.NoError(t, err)
		assert.NotContains(t, candidateIDs(candidates), foreign.ID.String())
	})
}

func candidateIDs(candidates []*domain.Property) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID.String())
	}
	return ids
}

func TestComparableStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewPropertyRepository(db)
	tenant := testutil.CreateTestTenant(t, db, "agency")
	ctx := testutil.TenantContext(tenant.ID)

	// Three comparable apartments in Cocody at 500k/m²
	for _, surface := range []float64{80, 100, 120} {
		s := surface
		testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
			p.SurfaceArea = s
			p.Price = s * 500_000
		})
	}
	// Different zone and different type must not count
	testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.Zone = "Yopougon"
		p.Price = 1_000_000_000
	})
	testutil.CreateTestProperty(t, db, tenant.ID, func(p *domain.Property) {
		p.PropertyType = domain.PropertyTypeVilla
		p.Price = 1_000_000_000
	})

	stats, err := repo.ComparableStats(ctx, tenant.ID, "cocody", domain.PropertyTypeApartment)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 500_000, stats.AvgPricePerSqm, 1)

	t.Run("other tenant's listings are invisible", func(t *testing.T) {
		other := testutil.CreateTestTenant(t, db, "other-agency")
		stats, err := repo.ComparableStats(ctx, other.ID, "Cocody", domain.PropertyTypeApartment)
		require.NoError(t, err)
		assert.Zero(t, stats.Count)
	})
}
