package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petalflow/config"
	"petalflow/cron"
	"petalflow/database"
	eventRepo "petalflow/database/repository/event"
	inquiryRepo "petalflow/database/repository/inquiry"
	inspirationRepo "petalflow/database/repository/inspiration"
	sessionRepo "petalflow/database/repository/session"
	vendorRepo "petalflow/database/repository/vendors"
	"petalflow/handlers"
	"petalflow/middleware"
	"petalflow/routes"
	"petalflow/services/onboarding"
	"petalflow/services/storage"
	"petalflow/services/vendors"
	"petalflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	var storageService storage.StorageService
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: inspiration uploads disabled: %v", err)
	} else {
		storageService = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vendRepo := vendorRepo.NewMongoVendorRepo()
	catalogRepo := vendorRepo.NewMongoCatalogRepo()
	inqRepo := inquiryRepo.NewMongoInquiryRepo()
	evRepo := eventRepo.NewMongoEventRepo()
	inspRepo := inspirationRepo.NewMongoInspirationRepo()
	sessRepo := sessionRepo.NewRedisSessionRepo(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	// services.
	vendorService := &vendors.DefaultVendorService{
		Repo:        vendRepo,
		CatalogRepo: catalogRepo,
		CacheClient: utils.GetCacheClient(),
		SectionFor:  onboarding.SectionForText,
		FamilyFor:   onboarding.ColorFamilyForHue,
	}

	reminderScheduler := cron.NewReminderScheduler()

	onboardingService := &onboarding.DefaultOnboardingService{
		Sessions:  sessRepo,
		Inquiries: inqRepo,
		Events:    evRepo,
		VendorSvc: vendorService,
		Reminders: reminderScheduler,
	}

	// Start the abandoned-wizard follow-up worker.
	cron.InitReminderWorker(sessRepo, inqRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Onboarding: handlers.NewOnboardingHandler(onboardingService),
		Vendor:     handlers.NewVendorHandler(vendorService),
		Event:      handlers.NewEventHandler(evRepo, inspRepo, storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
