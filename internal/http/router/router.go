package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/config"
	"github.com/akwaba-immo/operations-api/internal/database"
	"github.com/akwaba-immo/operations-api/internal/http/handler"
	"github.com/akwaba-immo/operations-api/internal/http/middleware"

	_ "github.com/akwaba-immo/operations-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	dealHandler      *handler.DealHandler
	propertyHandler  *handler.PropertyHandler
	matchHandler     *handler.MatchHandler
	shortlistHandler *handler.ShortlistHandler
	contactHandler   *handler.ContactHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	dealHandler *handler.DealHandler,
	propertyHandler *handler.PropertyHandler,
	matchHandler *handler.MatchHandler,
	shortlistHandler *handler.ShortlistHandler,
	contactHandler *handler.ContactHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		dealHandler:      dealHandler,
		propertyHandler:  propertyHandler,
		matchHandler:     matchHandler,
		shortlistHandler: shortlistHandler,
		contactHandler:   contactHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		status := http.StatusOK
		overall := "healthy"
		if !allHealthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes. Everything lives under a tenant scope; the tenant guard
	// rejects any tenant that does not match the caller's token.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tenants/{tenantId}", func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.authMiddleware.TenantGuard)

			// Contacts
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", rt.contactHandler.ListContacts)
				r.Post("/", rt.contactHandler.CreateContact)
				r.Get("/{contactId}", rt.contactHandler.GetContact)
			})

			// Property inventory
			r.Route("/properties", func(r chi.Router) {
				r.Get("/", rt.propertyHandler.ListProperties)
				r.Post("/", rt.propertyHandler.CreateProperty)
				r.Get("/{propertyId}", rt.propertyHandler.GetProperty)
				r.Put("/{propertyId}", rt.propertyHandler.UpdateProperty)
			})

			// CRM deals and the matching surface
			r.Route("/crm/deals", func(r chi.Router) {
				r.Get("/", rt.dealHandler.ListDeals)
				r.Post("/", rt.dealHandler.CreateDeal)

				r.Route("/{dealId}", func(r chi.Router) {
					r.Get("/", rt.dealHandler.GetDeal)
					r.Put("/", rt.dealHandler.UpdateDeal)
					r.Delete("/", rt.dealHandler.DeleteDeal)

					// Shortlist and matching
					r.Route("/properties", func(r chi.Router) {
						r.Get("/", rt.shortlistHandler.ListShortlist)
						r.Post("/", rt.shortlistHandler.AddToShortlist)
						r.Post("/match", rt.matchHandler.MatchProperties)
						r.Delete("/{propertyId}", rt.shortlistHandler.RemoveFromShortlist)
					})
				})
			})
		})
	})

	return r
}
