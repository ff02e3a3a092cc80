// File: labline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labline/config"
	"labline/cron"
	"labline/database"
	bookingRepo "labline/database/repository/booking"
	"labline/handlers"
	"labline/middleware"
	"labline/routes"
	"labline/services/catalog"
	"labline/services/conversation"
	"labline/services/dispatch"
	"labline/services/session"
	"labline/services/tasks"
	"labline/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitQueueCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetQueueCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	serviceCatalog := catalog.Default()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)

	engine := conversation.NewDefaultEngine(sessionStore, serviceCatalog, logger)

	queueClient := tasks.NewClient()
	defer queueClient.Close()

	transport := dispatch.NewHTTPTransport(config.AppConfig.TransportCallbackURL)
	dispatcher := dispatch.NewDispatcher(engine, transport, bookings, queueClient, logger)

	cron.InitFollowUpWorker(bookings, logger)

	webhookHandler := handlers.NewWebhookHandler(dispatcher, logger)
	bookingHandler := handlers.NewBookingHandler(bookings, serviceCatalog, logger)
	sessionHandler := handlers.NewSessionHandler(sessionStore, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Webhook endpoints.
		HandleInboundEvent: webhookHandler.HandleInboundEvent,

		// Catalog endpoints.
		GetAvailableServices: bookingHandler.GetAvailableServices,

		// Admin endpoints.
		ListBookings:    bookingHandler.ListBookings,
		GetUserBookings: bookingHandler.GetUserBookings,
		ResetSession:    sessionHandler.ResetSession,
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
