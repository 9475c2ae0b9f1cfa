package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/auth"
)

// MaxPageSize is the maximum allowed page size for paginated queries
const MaxPageSize = 200

// ErrNoTenantContext is returned when a query would run without a tenant
// scope. That is always a programming error, never a legitimate request.
var ErrNoTenantContext = errors.New("no tenant in request context")

// TenantFromContext returns the tenant the request is scoped to.
func TenantFromContext(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := auth.GetEffectiveTenantFilter(ctx)
	if !ok {
		return uuid.Nil, ErrNoTenantContext
	}
	return tenantID, nil
}

// ApplyTenantFilter applies the mandatory tenant scope to a GORM query.
// When the context carries no tenant the query is forced to match nothing;
// an unscoped query must never reach the database.
func ApplyTenantFilter(ctx context.Context, query *gorm.DB) *gorm.DB {
	tenantID, ok := auth.GetEffectiveTenantFilter(ctx)
	if !ok {
		return query.Where("1 = 0")
	}
	return query.Where("tenant_id = ?", tenantID)
}

// ApplyTenantFilterWithColumn applies the tenant scope using a qualified
// column name. Use it when joining tables that each carry a tenant_id.
func ApplyTenantFilterWithColumn(ctx context.Context, query *gorm.DB, columnName string) *gorm.DB {
	tenantID, ok := auth.GetEffectiveTenantFilter(ctx)
	if !ok {
		return query.Where("1 = 0")
	}
	return query.Where(columnName+" = ?", tenantID)
}

// NormalizePage clamps pagination inputs to sane bounds.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
