package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"serenity-spa-backend/config"
	"serenity-spa-backend/controllers"
	"serenity-spa-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public catalog
	r.GET("/categories", controllers.GetCategories)
	r.GET("/services", controllers.GetServices)
	r.GET("/services/:id", controllers.GetService)
	r.GET("/services/:id/reviews", controllers.GetServiceReviews)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		// Booking routes
		api.POST("/services/:id/bookings", controllers.CreateBooking)
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.POST("/:id/cancel", controllers.CancelBooking)
			bookings.POST("/:id/review", controllers.CreateReview)
		}

		// Staff routes
		staff := api.Group("")
		staff.Use(utils.StaffMiddleware())
		{
			staff.POST("/categories", controllers.CreateCategory)
			staff.PUT("/categories/:id", controllers.UpdateCategory)

			staff.POST("/services", controllers.CreateService)
			staff.PUT("/services/:id", controllers.UpdateService)
			staff.DELETE("/services/:id", controllers.DeleteService)
			staff.PUT("/services/:id/availability", controllers.SetAvailability)

			staff.GET("/dashboard", controllers.GetDashboardOverview)
			staff.GET("/dashboard/bookings", controllers.GetManagedBookings)
			staff.PUT("/dashboard/bookings/:id/status", controllers.TransitionBooking)
			staff.PUT("/dashboard/bookings/:id/paid", controllers.MarkBookingPaid)

			reportController := controllers.ReportController{}
			staff.GET("/reports/revenue", reportController.GetRevenueReport)
			staff.GET("/reports/services", reportController.GetServicesStats)
			staff.GET("/reports/users", reportController.GetUsersStats)

			staff.GET("/reports/export/revenue.pdf", controllers.ExportRevenuePDF)
			staff.GET("/reports/export/revenue.xlsx", controllers.ExportRevenueExcel)
			staff.GET("/reports/export/bookings.pdf", controllers.ExportBookingsPDF)
			staff.GET("/reports/export/bookings.xlsx", controllers.ExportBookingsExcel)
		}
	}

	return r
}
