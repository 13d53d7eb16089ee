package main

import (
	"fmt"
	"log"
	"os"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/routes"
	"crickpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Promo{},
		&models.Campaign{},
		&models.Job{},
		&models.SupportTicket{},
		&models.NotificationLog{},
	)
}

func main() {
	services.DefaultNotifier = services.NewNotificationService(config.DB)
	services.NewSchedulerService(config.DB, services.DefaultNotifier).Start()

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
