package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/domain"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A uniquely named shared-cache memory database keeps the schema visible
	// across pooled connections without leaking between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Tenant{},
		&domain.User{},
		&domain.Contact{},
		&domain.Deal{},
		&domain.Property{},
		&domain.ShortlistEntry{},
	)
	require.NoError(t, err)

	return db
}

// TenantContext returns a context scoped to a tenant, the way the tenant
// guard middleware scopes real requests.
func TenantContext(tenantID uuid.UUID) context.Context {
	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID:      uuid.New(),
		TenantID:    tenantID,
		DisplayName: "Test Agent",
		Role:        domain.RoleAgent,
	})
	return auth.WithTenantFilter(ctx, tenantID)
}

// CreateTestTenant inserts a tenant and returns it.
func CreateTestTenant(t *testing.T, db *gorm.DB, name string) *domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Slug:      fmt.Sprintf("%s-%d", name, time.Now().UnixNano()),
		Country:   "CI",
		IsActive:  true,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

// CreateTestContact inserts a contact for a tenant.
func CreateTestContact(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *domain.Contact {
	t.Helper()
	contact := &domain.Contact{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TenantID:  tenantID,
		Name:      name,
		Email:     "owner@example.com",
		Phone:     "+2250700000000",
	}
	require.NoError(t, db.Omit(clause.Associations).Create(contact).Error)
	return contact
}

// CreateTestDeal inserts a deal with the given criteria mutations applied.
func CreateTestDeal(t *testing.T, db *gorm.DB, tenantID uuid.UUID, mutate func(*domain.Deal)) *domain.Deal {
	t.Helper()
	deal := &domain.Deal{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		TenantID:    tenantID,
		Title:       "Recherche appartement",
		Type:        domain.DealTypeAchat,
		Stage:       domain.DealStageOpen,
		OwnerUserID: uuid.New(),
		Currency:    "XOF",
	}
	if mutate != nil {
		mutate(deal)
	}
	require.NoError(t, db.Omit(clause.Associations).Create(deal).Error)
	return deal
}

// CreateTestProperty inserts a property with the given mutations applied.
func CreateTestProperty(t *testing.T, db *gorm.DB, tenantID uuid.UUID, mutate func(*domain.Property)) *domain.Property {
	t.Helper()
	property := &domain.Property{
		BaseModel:         domain.BaseModel{ID: uuid.New()},
		TenantID:          tenantID,
		Title:             "Appartement 3 pièces",
		PropertyType:      domain.PropertyTypeApartment,
		Price:             25_000_000,
		Currency:          "XOF",
		Zone:              "Cocody",
		Country:           "CI",
		SurfaceArea:       90,
		Rooms:             3,
		Bedrooms:          2,
		Status:            domain.PropertyStatusAvailable,
		InternalReference: fmt.Sprintf("AKW-%d", time.Now().UnixNano()),
	}
	if mutate != nil {
		mutate(property)
	}
	require.NoError(t, db.Omit(clause.Associations).Create(property).Error)
	return property
}
