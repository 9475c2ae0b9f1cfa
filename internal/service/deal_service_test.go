package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/repository"
	"github.com/akwaba-immo/operations-api/internal/testutil"
)

func newDealService(t *testing.T, db *gorm.DB) *DealService {
	t.Helper()
	return NewDealService(
		repository.NewDealRepository(db),
		repository.NewContactRepository(db),
		zap.NewNop(),
	)
}

func TestDealService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	ctx := testutil.TenantContext(tenant.ID)
	svc := newDealService(t, db)

	deal, err := svc.Create(ctx, &domain.CreateDealRequest{
		Title:     "Recherche villa Riviera",
		Type:      domain.DealTypeAchat,
		BudgetMin: fptr(40_000_000),
		BudgetMax: fptr(60_000_000),
		Zones:     []string{"Riviera", "Cocody"},
		MinRooms:  iptr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.ID, deal.TenantID)
	assert.Equal(t, domain.DealStageOpen, deal.Stage)
	assert.Equal(t, "XOF", deal.Currency)
	assert.NotEqual(t, uuid.Nil, deal.OwnerUserID)

	user, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user.UserID, deal.OwnerUserID)
}

func TestDealService_CreateRejectsInvertedBounds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	ctx := testutil.TenantContext(tenant.ID)
	svc := newDealService(t, db)

	_, err := svc.Create(ctx, &domain.CreateDealRequest{
		Title:     "Budget inversé",
		Type:      domain.DealTypeAchat,
		BudgetMin: fptr(30_000_000),
		BudgetMax: fptr(20_000_000),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.CreateDealRequest{
		Title:      "Surface inversée",
		Type:       domain.DealTypeLocation,
		MinSurface: fptr(120),
		MaxSurface: fptr(80),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDealService_CreateUnknownClientContact(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	ctx := testutil.TenantContext(tenant.ID)
	svc := newDealService(t, db)

	bogus := uuid.New()
	_, err := svc.Create(ctx, &domain.CreateDealRequest{
		Title:           "Contact inconnu",
		Type:            domain.DealTypeVente,
		ClientContactID: &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDealService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	ctx := testutil.TenantContext(tenant.ID)
	svc := newDealService(t, db)

	deal := testutil.CreateTestDeal(t, db, tenant.ID, nil)

	updated, err := svc.Update(ctx, deal.ID, &domain.UpdateDealRequest{
		Title:     "Recherche mise à jour",
		Stage:     domain.DealStageWon,
		BudgetMax: fptr(35_000_000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Recherche mise à jour", updated.Title)
	assert.Equal(t, domain.DealStageWon, updated.Stage)
	require.NotNil(t, updated.BudgetMax)
	assert.Equal(t, 35_000_000.0, *updated.BudgetMax)
}

func TestDealService_CrossTenantIsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	other := testutil.CreateTestTenant(t, db, "autre-agence")
	svc := newDealService(t, db)

	deal := testutil.CreateTestDeal(t, db, tenant.ID, nil)
	otherCtx := testutil.TenantContext(other.ID)

	_, err := svc.GetByID(otherCtx, deal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(otherCtx, deal.ID, &domain.UpdateDealRequest{Title: "pirate"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(otherCtx, deal.ID), ErrNotFound)
}

func TestDealService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	ctx := testutil.TenantContext(tenant.ID)
	svc := newDealService(t, db)

	deal := testutil.CreateTestDeal(t, db, tenant.ID, nil)
	require.NoError(t, svc.Delete(ctx, deal.ID))

	_, err := svc.GetByID(ctx, deal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
