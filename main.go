// File: bandroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bandroom/config"
	"bandroom/cron"
	"bandroom/database"
	blockRepo "bandroom/database/repository/block"
	bookingRepo "bandroom/database/repository/booking"
	"bandroom/handlers"
	"bandroom/middleware"
	"bandroom/routes"
	"bandroom/services/booking"
	"bandroom/services/notification"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	policy, err := scheduling.PolicyFromConfig(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid schedule configuration: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	blocks := blockRepo.NewMongoBlockRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure booking indexes", zap.Error(err))
	}
	if err := blocks.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure block indexes", zap.Error(err))
	}

	// scheduling engine.
	detector := &scheduling.ConflictDetector{Repo: bookings}
	engine := &scheduling.Engine{
		Policy:    policy,
		Conflicts: detector,
		Bookings:  bookings,
		Blocks:    blocks,
	}

	// notification pipeline.
	generator := &notification.ArtifactGenerator{
		Domain:         config.AppConfig.ArtifactDomain,
		OrganizerEmail: config.AppConfig.OrganizerEmail,
		OrganizerName:  config.AppConfig.OrganizerName,
		Location:       policy.Location,
	}
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	defer queueClient.Close()

	notifier := &notification.DefaultNotificationService{
		Bookings:  bookings,
		Generator: generator,
		Queue:     queueClient,
		Mailer:    notification.NewSMTPMailer(),
	}
	cron.InitNotifyWorker(notifier)

	// lifecycle service.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Blocks:    blocks,
		Conflicts: detector,
		Policy:    policy,
		Notifier:  notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine, utils.GetCacheClient()),
		Booking:      handlers.NewBookingHandler(bookingService),
		Block:        handlers.NewBlockHandler(blocks),
	}

	// Register routes with the assembled handler bundle.
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
