package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

// UserContext holds authenticated user information
type UserContext struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	DisplayName string
	Email       string
	Role        domain.UserRoleType
}

type contextKey string

const userContextKey contextKey = "userContext"
const tenantFilterKey contextKey = "tenantFilter"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// MustFromContext extracts user context or panics
func MustFromContext(ctx context.Context) *UserContext {
	user, ok := FromContext(ctx)
	if !ok {
		panic("user context not found in context")
	}
	return user
}

// IsAdmin checks if the user holds the admin role
func (u *UserContext) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// CanWrite checks if the user may mutate tenant data
func (u *UserContext) CanWrite() bool {
	return u.Role == domain.RoleAdmin || u.Role == domain.RoleAgent
}

// WithTenantFilter records the tenant every repository query must be scoped to.
// The tenant guard middleware sets it after verifying the path tenant against
// the token.
func WithTenantFilter(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantFilterKey, tenantID)
}

// TenantFilterFromContext extracts the tenant filter from the context
func TenantFilterFromContext(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(tenantFilterKey).(uuid.UUID)
	return tenantID, ok
}

// GetEffectiveTenantFilter returns the tenant ID repositories must filter by.
// It prefers the explicit filter set by the tenant guard and falls back to the
// authenticated user's tenant. The second return is false when neither exists;
// repositories treat that as a fatal condition, never as "all tenants".
func GetEffectiveTenantFilter(ctx context.Context) (uuid.UUID, bool) {
	if tenantID, ok := TenantFilterFromContext(ctx); ok {
		return tenantID, true
	}
	if userCtx, ok := FromContext(ctx); ok && userCtx.TenantID != uuid.Nil {
		return userCtx.TenantID, true
	}
	return uuid.Nil, false
}
