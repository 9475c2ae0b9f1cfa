package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/docs"
	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/config"
	"github.com/akwaba-immo/operations-api/internal/database"
	"github.com/akwaba-immo/operations-api/internal/http/handler"
	"github.com/akwaba-immo/operations-api/internal/http/middleware"
	"github.com/akwaba-immo/operations-api/internal/http/router"
	"github.com/akwaba-immo/operations-api/internal/jobs"
	"github.com/akwaba-immo/operations-api/internal/logger"
	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/repository"
	"github.com/akwaba-immo/operations-api/internal/service"
)

// @title Akwaba Immo Operations API
// @version 1.0
// @description Multi-tenant real-estate operations API: CRM deals, property inventory and deal-to-property matching

// @contact.name API Support
// @contact.email support@akwaba-immo.ci

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "operations-staging.akwaba-immo.ci"
	case "production":
		docs.SwaggerInfo.Host = "api.akwaba-immo.ci"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Repositories
	contactRepo := repository.NewContactRepository(db)
	dealRepo := repository.NewDealRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	shortlistRepo := repository.NewShortlistRepository(db)

	// Matching engine over a TTL cache of comparable statistics
	statsCache := matching.NewStatsCache(propertyRepo, cfg.Matching.StatsTTLDuration())
	engine, err := matching.NewEngine(statsCache, matching.DefaultWeights(), log)
	if err != nil {
		return fmt.Errorf("failed to create matching engine: %w", err)
	}

	// Services
	contactService := service.NewContactService(contactRepo, log)
	dealService := service.NewDealService(dealRepo, contactRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, contactRepo, log)
	matchService := service.NewMatchService(dealRepo, propertyRepo, engine, log)
	shortlistService := service.NewShortlistService(dealRepo, propertyRepo, contactRepo, shortlistRepo, engine, log)

	// Middleware
	tokenManager := auth.NewTokenManager(&cfg.JWT)
	authMiddleware := auth.NewMiddleware(tokenManager, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	contactHandler := handler.NewContactHandler(contactService, log)
	dealHandler := handler.NewDealHandler(dealService, log)
	propertyHandler := handler.NewPropertyHandler(propertyService, log)
	matchHandler := handler.NewMatchHandler(matchService, log)
	shortlistHandler := handler.NewShortlistHandler(shortlistService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		dealHandler,
		propertyHandler,
		matchHandler,
		shortlistHandler,
		contactHandler,
	)

	// Background refresh of comparable statistics keeps matching runs off
	// cold aggregates.
	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterStatsRefreshJob(scheduler, propertyRepo, statsCache, log, cfg.Matching.StatsRefreshCron); err != nil {
		log.Error("Failed to register stats refresh job", zap.Error(err))
	} else {
		scheduler.Start()
		log.Info("Scheduler started with stats refresh job",
			zap.String("cron_expr", cfg.Matching.StatsRefreshCron))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
