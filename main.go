package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/catalog"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(config.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.TokenSecret == "" {
		logger.Fatal("main: ACCESS_TOKEN_SECRET must be set")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.Connect(rootCtx, cfg.DatabaseURL, cfg.DatabaseName, logger)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}

	// Redis is optional: without it the catalog is not cached and notifications are dropped.
	var cacheClient *redis.Client
	var redisClients []*redis.Client
	if cfg.RedisAddr != "" {
		cacheClient, err = utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: catalog cache disabled", zap.Error(err))
		} else {
			redisClients = append(redisClients, cacheClient)
		}
	}

	// repositories.
	legacyAdmission := cfg.AdmissionMode == config.AdmissionLegacy
	if legacyAdmission {
		logger.Warn("main: legacy booking admission enabled; concurrent duplicate bookings are possible")
	}
	repos := repository.NewMongoRepositories(db.Database, !legacyAdmission)

	// notifications.
	var notifier notification.Notifier = notification.NoopNotifier{}
	var worker *cron.NotificationWorker
	var queueNotifier *notification.QueueNotifier
	if cfg.EnableNotifications && cfg.RedisAddr != "" {
		queueOpt := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queueNotifier = notification.NewQueueNotifier(queueOpt, logger)
		notifier = queueNotifier
		worker = cron.NewNotificationWorker(queueOpt, repos.Notifications, logger)
		if err := worker.Start(); err != nil {
			logger.Fatal("main: notification worker", zap.Error(err))
		}
	}

	// services.
	tokens := utils.NewTokenManager(cfg.TokenSecret)
	userService := &user.DefaultUserService{
		Repo:     repos.Users,
		Tokens:   tokens,
		TokenTTL: cfg.TokenTTL,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:        repos.Bookings,
		Services:        repos.Services,
		Payments:        repos.Payments,
		Notifier:        notifier,
		Logger:          logger.Named("booking"),
		LegacyAdmission: legacyAdmission,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:   repos.Services,
		Cache:  cacheClient,
		TTL:    cfg.CatalogCacheTTL,
		Logger: logger.Named("catalog"),
	}
	doctorService := &doctor.DefaultDoctorService{Repo: repos.Doctors}
	paymentService := payment.NewStripePaymentService(cfg.StripeKey, cfg.PaymentCurrency, logger.Named("payment"))

	health := utils.NewHealthMonitor(db.Client, redisClients, time.Minute)
	health.Start(rootCtx)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:        tokens,
		Admins:        userService,
		Health:        health,
		Services:      handlers.NewServiceHandler(catalogService),
		Users:         handlers.NewUserHandler(userService),
		Bookings:      handlers.NewBookingHandler(bookingService),
		Doctors:       handlers.NewDoctorHandler(doctorService),
		Payments:      handlers.NewPaymentHandler(paymentService),
		Notifications: handlers.NewNotificationHandler(repos.Notifications),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	stop()

	if worker != nil {
		worker.Shutdown()
	}
	if queueNotifier != nil {
		_ = queueNotifier.Close()
	}
	if cacheClient != nil {
		_ = cacheClient.Close()
	}
	if err := db.Close(ctx); err != nil {
		logger.Error("main: database close", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
