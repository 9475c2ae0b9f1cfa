package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

func guardRequest(t *testing.T, userCtx *UserContext, pathTenant string) *httptest.ResponseRecorder {
	t.Helper()
	m := NewMiddleware(testTokenManager(), zap.NewNop())

	var seededTenant uuid.UUID
	var seeded bool
	handler := m.TenantGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seededTenant, seeded = TenantFilterFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tenants/"+pathTenant+"/crm/deals", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("tenantId", pathTenant)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userCtx != nil {
		ctx = WithUserContext(ctx, userCtx)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code == http.StatusOK {
		require.True(t, seeded)
		assert.Equal(t, pathTenant, seededTenant.String())
	}
	return rec
}

func TestTenantGuard(t *testing.T) {
	tenantID := uuid.New()
	userCtx := &UserContext{UserID: uuid.New(), TenantID: tenantID, Role: domain.RoleAgent}

	t.Run("matching tenant passes and seeds the filter", func(t *testing.T) {
		rec := guardRequest(t, userCtx, tenantID.String())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatched tenant is a hard 403", func(t *testing.T) {
		rec := guardRequest(t, userCtx, uuid.NewString())
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp domain.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("malformed tenant id is a 400", func(t *testing.T) {
		rec := guardRequest(t, userCtx, "not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing user context is a 403", func(t *testing.T) {
		rec := guardRequest(t, nil, tenantID.String())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthenticate(t *testing.T) {
	manager := testTokenManager()
	m := NewMiddleware(manager, zap.NewNop())

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, ok := FromContext(r.Context())
		require.True(t, ok)
		assert.NotEqual(t, uuid.Nil, userCtx.UserID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid bearer token passes", func(t *testing.T) {
		token, err := manager.Issue(testUser(uuid.New()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	m := NewMiddleware(testTokenManager(), zap.NewNop())
	handler := m.RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := WithUserContext(req.Context(), &UserContext{Role: domain.RoleAdmin})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is a 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := WithUserContext(req.Context(), &UserContext{Role: domain.RoleViewer})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
