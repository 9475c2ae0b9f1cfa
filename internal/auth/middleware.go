package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

// Middleware handles authentication for HTTP requests
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Authenticate validates the bearer token and stores the user context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		userCtx, err := m.tokens.Validate(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		m.logger.Debug("request authenticated",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("user_id", userCtx.UserID.String()),
			zap.String("tenant_id", userCtx.TenantID.String()),
			zap.String("role", string(userCtx.Role)),
			zap.Duration("auth_duration", time.Since(start)),
		)

		ctx := WithUserContext(r.Context(), userCtx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantGuard checks the {tenantId} path segment against the token's tenant
// and seeds the repository tenant filter. A mismatch is a hard 403; data from
// another tenant must never leak, not even its existence.
func (m *Middleware) TenantGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, ok := FromContext(r.Context())
		if !ok {
			respondError(w, http.StatusForbidden, "no user context")
			return
		}

		tenantID, err := uuid.Parse(chi.URLParam(r, "tenantId"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid tenant id")
			return
		}

		if tenantID != userCtx.TenantID {
			m.logger.Warn("tenant mismatch rejected",
				zap.String("path", r.URL.Path),
				zap.String("token_tenant", userCtx.TenantID.String()),
				zap.String("path_tenant", tenantID.String()),
				zap.String("user_id", userCtx.UserID.String()),
			)
			respondError(w, http.StatusForbidden, "access to this tenant is not allowed")
			return
		}

		ctx := WithTenantFilter(r.Context(), tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the user holds one of the given roles
func (m *Middleware) RequireRole(roles ...domain.UserRoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userCtx, ok := FromContext(r.Context())
			if !ok {
				respondError(w, http.StatusForbidden, "no user context")
				return
			}

			for _, role := range roles {
				if userCtx.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			respondError(w, http.StatusForbidden, "insufficient permissions")
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.Fail(message))
}
