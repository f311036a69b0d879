// @title Aphia Commerce API
// @version 1.0
// @description Aphia e-commerce backend: orders, vendor views, complaints
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/controllers/category_controller"
	"github.com/Aphia-Commerce/aphia-api/controllers/complaint_controller"
	"github.com/Aphia-Commerce/aphia-api/controllers/order_controller"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/routes"
	"github.com/Aphia-Commerce/aphia-api/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiter)
	config.ConnectRedis()

	// Repositories over the shared GORM handle
	repos := repository.New(config.Gorm)

	// Outgoing email: Resend client + async dispatcher with audit trail
	mailer := services.NewDispatcher(services.NewResendClient(), config.DB)

	// Wire controllers
	order_controller.Init(repos, mailer)
	complaint_controller.Init(repos, mailer)
	category_controller.Init(repos)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	routes.SetupOrderRoutes(api)
	routes.SetupComplaintRoutes(api)
	routes.SetupCategoryRoutes(api, repos)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
