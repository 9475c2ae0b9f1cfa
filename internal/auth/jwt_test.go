package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwaba-immo/operations-api/internal/config"
	"github.com/akwaba-immo/operations-api/internal/domain"
)

func testTokenManager() *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "operations-api-test",
		TTLMinutes: 60,
	})
}

func testUser(tenantID uuid.UUID) *domain.User {
	return &domain.User{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		TenantID:    tenantID,
		Email:       "agent@example.com",
		DisplayName: "Awa Koné",
		Role:        domain.RoleAgent,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager := testTokenManager()
	tenantID := uuid.New()
	user := testUser(tenantID)

	token, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userCtx, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, tenantID, userCtx.TenantID)
	assert.Equal(t, "Awa Koné", userCtx.DisplayName)
	assert.Equal(t, domain.RoleAgent, userCtx.Role)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	manager := testTokenManager()
	other := NewTokenManager(&config.JWTConfig{Secret: "different-secret", Issuer: "operations-api-test", TTLMinutes: 60})

	token, err := other.Issue(testUser(uuid.New()))
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := testTokenManager()
	manager.ttl = -time.Minute

	token, err := manager.Issue(testUser(uuid.New()))
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	manager := testTokenManager()
	other := NewTokenManager(&config.JWTConfig{Secret: "test-secret-key", Issuer: "someone-else", TTLMinutes: 60})

	token, err := other.Issue(testUser(uuid.New()))
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	manager := testTokenManager()
	user := testUser(uuid.New())
	user.Role = "superuser"

	token, err := manager.Issue(user)
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
