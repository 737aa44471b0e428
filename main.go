// File: farmmarket/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmmarket/config"
	"farmmarket/cron"
	"farmmarket/database"
	farmerRepoPkg "farmmarket/database/repository/farmer"
	notificationRepo "farmmarket/database/repository/notification"
	userRepoPkg "farmmarket/database/repository/user"
	"farmmarket/handlers"
	"farmmarket/middleware"
	"farmmarket/routes"
	"farmmarket/services/farmer"
	"farmmarket/services/notification"
	"farmmarket/services/realtime"
	"farmmarket/services/tasks"
	"farmmarket/services/user"
	"farmmarket/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRealtime()
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetRealtimeClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	farmerRepo := farmerRepoPkg.NewMongoFarmerRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	templateRepo := notificationRepo.NewMongoTemplateRepo()
	prefRepo := notificationRepo.NewMongoPreferenceRepo()
	tokenRepo := notificationRepo.NewMongoDeviceTokenRepo()

	// services.
	userService := user.NewUserService(userRepo)
	farmerService := farmer.NewFarmerService(farmerRepo)
	notificationService := &notification.DefaultNotificationService{
		Users:     userService,
		Repo:      notifRepo,
		Templates: templateRepo,
		Prefs:     prefRepo,
		Tokens:    tokenRepo,
		Email:     notification.NewSMTPEmailProvider(),
		Push:      notification.NewFCMPushProvider(),
		Realtime:  realtime.NewRedisPublisher(utils.GetRealtimeClient()),
	}

	if err := notificationService.SeedDefaultTemplates(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed notification templates: %v", err)
	}

	// Scheduled reminders.
	reminderClient := tasks.NewReminderClient()
	defer reminderClient.Close()
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		User:         handlers.NewUserHandler(userService, notificationService),
		Farmer:       handlers.NewFarmerHandler(farmerService),
		Notification: handlers.NewNotificationHandler(notificationService, reminderClient),
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
