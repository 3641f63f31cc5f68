package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"klinik/clients/clinicapi"
	"klinik/config"
	"klinik/cron"
	"klinik/database"
	recordsRepo "klinik/database/repository/records"
	"klinik/handlers"
	"klinik/middleware"
	"klinik/routes"
	"klinik/services/booking"
	"klinik/services/tasks"
	"klinik/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := utils.InitRedis(ctx, cfg); err != nil {
		logger.Fatal("main: redis unavailable", zap.Error(err))
	}
	defer utils.CloseRedis()

	// metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := utils.NewBookingMetrics(reg)

	// audit trail.
	var (
		auditRepo recordsRepo.AuditRepository
		auditSink booking.AuditSink
		worker    *cron.AuditWorker
		enqueuer  *asynq.Client
	)
	if cfg.AuditEnabled {
		db, err := database.InitDB(ctx, cfg)
		if err != nil {
			logger.Fatal("main: mongo unavailable", zap.Error(err))
		}
		auditRepo, err = recordsRepo.NewMongoAuditRepo(db)
		if err != nil {
			logger.Fatal("main: audit repository", zap.Error(err))
		}

		enqueuer = asynq.NewClient(cron.RedisOpt(cfg))
		auditSink = &tasks.Enqueuer{Client: enqueuer}
		worker = cron.NewAuditWorker(cfg, auditRepo, logger.Named("audit"))
		if err := worker.Start(); err != nil {
			logger.Fatal("main: audit worker", zap.Error(err))
		}
	} else {
		logger.Info("Audit trail disabled, keeping entries in memory")
		auditRepo = recordsRepo.NewMemoryAuditRepo()
		auditSink = &tasks.RepositorySink{Repo: auditRepo}
	}

	// clinic API and services.
	client := clinicapi.NewClient(cfg.ClinicAPIURL,
		clinicapi.WithTimeout(cfg.ClinicAPITimeout()),
		clinicapi.WithLogger(logger.Named("clinicapi")),
		clinicapi.WithMetrics(metrics),
	)

	bookingService := &booking.DefaultBookingService{
		API:             client,
		Guard:           booking.NewSubmissionGuard(utils.CacheClient, cfg.BookingGuardTTL()),
		Audit:           auditSink,
		Metrics:         metrics,
		Logger:          logger.Named("booking"),
		Location:        cfg.Location(),
		IntervalMinutes: cfg.SlotIntervalMinutes,
	}
	catalogueService := booking.NewCatalogueService(client, logger.Named("catalogue"))

	var identity middleware.IdentityProvider
	switch cfg.IdentityMode {
	case config.IdentityJWT:
		identity = middleware.JWTIdentityProvider{Secret: []byte(cfg.JWTSecret)}
	default:
		identity = &middleware.UpstreamIdentityProvider{
			API:    client,
			Cache:  utils.AuthCacheClient,
			TTL:    cfg.IdentityCacheTTL(),
			Logger: logger.Named("identity"),
		}
	}

	handlerBundle := &handlers.HandlerBundle{
		Schedule:  handlers.NewScheduleHandler(bookingService, logger),
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Auth:      handlers.NewAuthHandler(client, logger),
		Admin:     handlers.NewAdminHandler(bookingService, logger),
		Audit:     handlers.NewAuditHandler(auditRepo, logger),
		Catalogue: handlers.NewCatalogueHandler(catalogueService, logger),
	}

	utils.StartHealthMonitor(ctx, 30*time.Second,
		[]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle, routes.Deps{Identity: identity, Gatherer: reg})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if enqueuer != nil {
		_ = enqueuer.Close()
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
