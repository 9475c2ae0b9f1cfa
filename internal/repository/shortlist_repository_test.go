package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/testutil"
)

func shortlistEntry(tenantID, dealID, propertyID uuid.UUID, score int) *domain.ShortlistEntry {
	return &domain.ShortlistEntry{
		TenantID:   tenantID,
		DealID:     dealID,
		PropertyID: propertyID,
		MatchScore: score,
		MatchExplanation: domain.MatchExplanation{
			BudgetScore: 1.0,
			Reasons:     []string{"price within budget"},
		},
		AddedByUserID: uuid.New(),
	}
}

func TestShortlistUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewShortlistRepository(db)
	tenant := testutil.CreateTestTenant(t, db, "agency")
	ctx := testutil.TenantContext(tenant.ID)

	deal := testutil.CreateTestDeal(t, db, tenant.ID, nil)
	property := testutil.CreateTestProperty(t, db, tenant.ID, nil)

	t.Run("first add inserts", func(t *testing.T) {
		entry := shortlistEntry(tenant.ID, deal.ID, property.ID, 93)
		require.NoError(t, repo.Upsert(ctx, entry))

		count, err := repo.CountByDeal(ctx, deal.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("re-adding the same pair updates in place", func(t *testing.T) {
		updated := shortlistEntry(tenant.ID, deal.ID, property.ID, 87)
		updated.MatchExplanation.Reasons = []string{"price slightly over budget"}
		require.NoError(t, repo.Upsert(ctx, updated))

		count, err := repo.CountByDeal(ctx, deal.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		stored, err := repo.GetByDealAndProperty(ctx, deal.ID, property.ID)
		require.NoError(t, err)
		assert.Equal(t, 87, stored.MatchScore)
		assert.Equal(t, []string{"price slightly over budget"}, stored.MatchExplanation.Reasons)
	})

	t.Run("different property is a second row", func(t *testing.T) {
		other := testutil.CreateTestProperty(t, db, tenant.ID, nil)
		require.NoError(t, repo.Upsert(ctx, shortlistEntry(tenant.ID, deal.ID, other.ID, 60)))

		count, err := repo.CountByDeal(ctx, deal.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("list orders by score descending", func(t *testing.T) {
		entries, err := repo.ListByDeal(ctx, deal.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 87, entries[0].MatchScore)
		assert.Equal(t, 60, entries[1].MatchScore)
		assert.NotNil(t, entries[0].Property)
	})
}

func TestShortlistDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewShortlistRepository(db)
	tenant := testutil.CreateTestTenant(t, db, "agency")
	ctx := testutil.TenantContext(tenant.ID)

	deal := testutil.CreateTestDeal(t, db, tenant.ID, nil)
	property := testutil.CreateTestProperty(t, db, tenant.ID, nil)
	require.NoError(t, repo.Upsert(ctx, shortlistEntry(tenant.ID, deal.ID, property.ID, 75)))

	removed, err := repo.Delete(ctx, deal.ID, property.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, deal.ID, property.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestShortlistTenantIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewShortlistRepository(db)

	tenantA := testutil.CreateTestTenant(t, db, "agency-a")
	tenantB := testutil.CreateTestTenant(t, db, "agency-b")

	deal := testutil.CreateTestDeal(t, db, tenantA.ID, nil)
	property := testutil.CreateTestProperty(t, db, tenantA.ID, nil)
	require.NoError(t, repo.Upsert(testutil.TenantContext(tenantA.ID),
		shortlistEntry(tenantA.ID, deal.ID, property.ID, 80)))

	ctxB := testutil.TenantContext(tenantB.ID)

	entries, err := repo.ListByDeal(ctxB, deal.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = repo.GetByDealAndProperty(ctxB, deal.ID, property.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	removed, err := repo.Delete(ctxB, deal.ID, property.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
