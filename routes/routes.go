package routes

import (
	"os"

	"crickpro-backend/config"
	"crickpro-backend/controllers"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, frontend)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
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

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
		}

		// Job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", controllers.CreateJob)
			jobs.GET("", controllers.GetJobs)
			jobs.GET("/:id", controllers.GetJob)
			jobs.PUT("/:id", controllers.UpdateJob)
			jobs.DELETE("/:id", controllers.DeleteJob)
		}

		// Promo routes
		promos := api.Group("/promos")
		{
			promos.POST("/validate", controllers.ValidatePromo)

			admin := promos.Group("", utils.RequireRole(models.RoleAdmin))
			admin.POST("", controllers.CreatePromo)
			admin.GET("", controllers.GetPromos)
			admin.PUT("/:id", controllers.UpdatePromo)
			admin.DELETE("/:id", controllers.DeletePromo)
		}

		// Wallet routes
		wallet := api.Group("/wallet")
		{
			wallet.GET("", controllers.GetWallet)
			wallet.GET("/transactions", controllers.GetWalletTransactions)
		}

		// Support ticket routes
		tickets := api.Group("/tickets")
		{
			tickets.POST("", controllers.CreateTicket)
			tickets.GET("", controllers.GetTickets)
			tickets.PUT("/:id", utils.RequireRole(models.RoleAdmin), controllers.UpdateTicket)
		}

		// Campaign routes (admin back-office)
		campaigns := api.Group("/campaigns", utils.RequireRole(models.RoleAdmin))
		{
			campaigns.POST("/generate", controllers.GenerateCampaigns)
			campaigns.GET("", controllers.GetCampaigns)
			campaigns.PUT("/:id", controllers.UpdateCampaign)
		}

		// Admin routes
		admin := api.Group("/admin", utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/overview", controllers.GetAdminOverview)
			admin.GET("/users", controllers.GetAdminUsers)
			admin.GET("/bookings", controllers.GetAdminBookings)
		}
	}

	return r
}
