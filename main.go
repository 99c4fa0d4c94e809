// Package main provides the main entry point for the Sankofa influencer tax registry
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwabenaosei/Sankofa/app/handlers"
	"github.com/kwabenaosei/Sankofa/app/middleware"
	"github.com/kwabenaosei/Sankofa/app/router"
	"github.com/kwabenaosei/Sankofa/app/services"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/config"
	_ "github.com/kwabenaosei/Sankofa/docs"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/google/uuid"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Sankofa registry application...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogOutput(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Setup graceful shutdown
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogOutput routes the standard logger through a rotating file writer
// when file output is configured
func setupLogOutput(cfg config.LoggingConfig) {
	if cfg.Output != "file" && cfg.Output != "both" {
		return
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if cfg.Output == "both" {
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	} else {
		log.SetOutput(rotator)
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity.
// Returns a nil client when caching is disabled; the analytics flow
// degrades to recomputation in that case.
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB if provided in config
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// startMetricsServer exposes Prometheus metrics on a separate listener so the
// scrape endpoint never shares the public API port. The returned function
// shuts the listener down.
func startMetricsServer(cfg config.MetricsConfig) func() {
	mux := http.NewServeMux()
	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}
	mux.Handle(path, promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("Metrics server listening on %s%s", srv.Addr, path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server error: %v", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	if rc != nil {
		cancel := startCacheHealthMonitor(context.Background(), rc, 30*time.Second)
		stopFuncs = append(stopFuncs, cancel)
	}

	// Seed the configured revenue officer account
	if err := ensureOfficerAccount(db, cfg); err != nil {
		return nil, err
	}

	// Initialize repositories
	influencerRepo := repository.NewInfluencerRepository(db)
	assessmentRepo := repository.NewTaxAssessmentRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	officerRepo := repository.NewOfficerRepository(db)

	// Captcha service for officer login
	captchaSvc, err := services.NewCaptchaServiceRotate(2*time.Minute, 15, 300)
	if err != nil {
		return nil, err
	}

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Channel statistics provider client; unconfigured means lookups are off
	channelLookupSvc := services.NewChannelLookupClient(
		cfg.ChannelAPI.BaseURL,
		cfg.ChannelAPI.APIKey,
		cfg.ChannelAPI.Timeout,
	)

	// Initialize flows
	influencerFlow := businessflow.NewInfluencerFlow(
		influencerRepo,
		assessmentRepo,
		auditRepo,
		db,
	)

	assessmentFlow := businessflow.NewAssessmentFlow(
		assessmentRepo,
		influencerRepo,
		auditRepo,
		db,
	)

	analyticsFlow := businessflow.NewAnalyticsFlow(
		influencerRepo,
		assessmentRepo,
		rc,
		&cfg.Cache,
	)

	auditLogFlow := businessflow.NewAuditLogFlow(auditRepo)

	reportFlow := businessflow.NewReportFlow(
		influencerRepo,
		assessmentRepo,
		auditRepo,
	)

	officerAuthFlow := businessflow.NewOfficerAuthFlow(
		officerRepo,
		auditRepo,
		tokenService,
		captchaSvc,
	)

	channelFlow := businessflow.NewChannelFlow(channelLookupSvc, auditRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(officerAuthFlow)
	influencerHandler := handlers.NewInfluencerHandler(influencerFlow)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentFlow)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsFlow)
	auditLogHandler := handlers.NewAuditLogHandler(auditLogFlow)
	reportHandler := handlers.NewReportHandler(reportFlow)
	channelHandler := handlers.NewChannelHandler(channelFlow)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize router
	appRouter := router.NewFiberRouter(
		authHandler,
		influencerHandler,
		assessmentHandler,
		analyticsHandler,
		auditLogHandler,
		reportHandler,
		channelHandler,
		authMiddleware,
	)

	if cfg.Metrics.Enabled {
		stopMetrics := startMetricsServer(cfg.Metrics)
		stopFuncs = append(stopFuncs, stopMetrics)
	}

	// Create application struct from FiberRouter
	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}

// ensureOfficerAccount seeds the revenue officer named in the configuration
// when it does not exist yet. The password is only used at creation time;
// an existing account is never overwritten.
func ensureOfficerAccount(db *gorm.DB, cfg *config.ProductionConfig) error {
	if cfg.Officer.Username == "" || cfg.Officer.Password == "" {
		return nil
	}

	officerRepo := repository.NewOfficerRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := officerRepo.ByUsername(ctx, cfg.Officer.Username)
	if err != nil {
		return fmt.Errorf("failed to look up officer %s: %w", cfg.Officer.Username, err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Officer.Password), cfg.Security.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash officer password: %w", err)
	}

	officer := &models.Officer{
		UUID:         uuid.New(),
		Username:     cfg.Officer.Username,
		FullName:     cfg.Officer.FullName,
		PasswordHash: string(hash),
		IsActive:     utils.ToPtr(true),
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}
	if err := officerRepo.Save(ctx, officer); err != nil {
		return fmt.Errorf("failed to seed officer %s: %w", cfg.Officer.Username, err)
	}

	log.Printf("Seeded revenue officer account %s", cfg.Officer.Username)
	return nil
}
