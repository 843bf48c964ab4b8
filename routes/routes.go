package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fixuno-backend/config"
	"fixuno-backend/controllers"
	"fixuno-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", controllers.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", controllers.SessionHeader},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Catalog routes
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:slug", controllers.GetService)
		api.GET("/search", controllers.SearchCatalog)
		api.GET("/faqs", controllers.GetFAQs)

		// Cart routes (session via X-Cart-Session header)
		cart := api.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("/items", controllers.AddCartItem)
			cart.PUT("/items/:id", controllers.SetCartQuantity)
			cart.DELETE("", controllers.ClearCart)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.SubmitBooking)
			bookings.GET("", controllers.GetMyBookings)
			bookings.DELETE("/:id", controllers.CancelBooking)
		}

		api.GET("/profile", controllers.GetProfile)
		api.GET("/tracker", controllers.GetTracker)

		// Navigation routes (session via X-Cart-Session header)
		nav := api.Group("/navigation")
		{
			nav.POST("/resolve", controllers.ResolvePath)
			nav.GET("/view", controllers.GetView)
			nav.POST("/navigate", controllers.NavigateView)
			nav.POST("/panel", controllers.OpenViewPanel)
			nav.POST("/back", controllers.NavigateBack)
		}

		// Assistant routes
		assistant := api.Group("/assistant")
		{
			assistant.POST("/chat", controllers.AssistantChat)
			assistant.POST("/explain", controllers.AssistantExplain)
		}
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		admin.Use(utils.AdminAuthMiddleware())
		admin.GET("/bookings", controllers.GetAdminBookings)
		admin.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", controllers.DeleteBooking)
		admin.GET("/stats", controllers.GetAdminStats)
	}

	return r
}
