// File: bookwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/database"
	bookingRepo "bookwise/database/repository/booking"
	conversationRepo "bookwise/database/repository/conversation"
	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/routes"
	"bookwise/services/agent"
	"bookwise/services/calendar"
	ai "bookwise/services/intelligence"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	conversations := conversationRepo.NewMongoConversationRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// collaborators.
	calendarSvc := calendar.NewService(
		context.Background(),
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.CalendarID,
		logger,
	)
	classifier := ai.NewClassifier(config.AppConfig.GeminiAPIKey)

	stateTTL := time.Duration(config.AppConfig.StateTTLMinutes) * time.Minute
	stateStore := agent.NewRedisStateStore(utils.GetStateCacheClient(), stateTTL)

	reminderScheduler := cron.NewScheduler()
	cron.InitReminderWorker()

	// services.
	agentSvc := &agent.DefaultAgentService{
		Classifier: classifier,
		Calendar:   calendarSvc,
		States:     stateStore,
		Bookings:   bookings,
		Reminders:  reminderScheduler,
		Logger:     logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:          handlers.NewChatHandler(agentSvc, conversations, logger),
		Calendar:      handlers.NewCalendarHandler(calendarSvc, bookings, logger),
		Conversations: handlers.NewConversationHandler(conversations, logger),
		Bookings:      handlers.NewBookingHandler(bookings, logger),
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
