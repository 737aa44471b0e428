package routes

import (
	"net/http"
	"time"

	"farmmarket/handlers"
	"farmmarket/middleware"
	"farmmarket/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	User         *handlers.UserHandler
	Farmer       *handlers.FarmerHandler
	Notification *handlers.NotificationHandler
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.MeHandler)
	}
}

// RegisterFarmerRoutes registers farmer profile and discovery endpoints.
func RegisterFarmerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/farmers")
	{
		// Public discovery endpoints.
		api.GET("", hb.Farmer.ListFarmersHandler)
		api.GET("/search", hb.Farmer.SearchByLocationHandler)
		api.GET("/:id", hb.Farmer.GetFarmerHandler)

		// Endpoints that modify farmer data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Farmer.CreateFarmerHandler)
		protected.PUT("/:id", hb.Farmer.UpdateFarmerHandler)
		protected.DELETE("/:id", hb.Farmer.DeleteFarmerHandler)
	}
}

// RegisterNotificationRoutes registers the notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/send", hb.Notification.SendNotificationHandler)
		api.POST("/send-bulk", hb.Notification.SendBulkNotificationHandler)
		api.POST("/reminders", hb.Notification.ScheduleReminderHandler)
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.GET("/unread-count", hb.Notification.UnreadCountHandler)
		api.PUT("/:id/read", hb.Notification.MarkAsReadHandler)
		api.GET("/preferences", hb.Notification.GetPreferencesHandler)
		api.PUT("/preferences", hb.Notification.UpdatePreferencesHandler)
		api.POST("/device-tokens", hb.Notification.RegisterDeviceTokenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm FarmMarket",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterFarmerRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
