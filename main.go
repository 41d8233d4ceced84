package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"serenity-spa-backend/config"
	"serenity-spa-backend/controllers"
	"serenity-spa-backend/models"
	"serenity-spa-backend/routes"
	"serenity-spa-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.Review{},
	)
}

func main() {
	controllers.InitServices()

	notifier := services.NewNotificationService(config.DB)
	reminders := services.NewReminderService(config.DB, notifier)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
