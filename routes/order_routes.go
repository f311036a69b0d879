package routes

import (
	"time"

	"github.com/Aphia-Commerce/aphia-api/controllers/order_controller"
	"github.com/Aphia-Commerce/aphia-api/middleware"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers the order endpoints.
func SetupOrderRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		orders.POST("", order_controller.CreateOrder)
		// GET /orders doubles as the admin status listing via ?status=
		orders.GET("", order_controller.GetOrders)

		orders.GET("/vendor", middleware.RequireRole(models.RoleVendor), order_controller.GetVendorOrders)

		orders.GET("/:orderId", order_controller.GetOrderDetails)
		orders.DELETE("/:orderId", order_controller.DeleteOrder)

		// MarkDelivered itself checks nothing about the caller; the admin
		// gate and rate limit live here on the route.
		orders.PATCH("/:orderId/deliver",
			middleware.AdminMiddleware(),
			middleware.RateLimiter(100, time.Minute),
			order_controller.MarkDelivered,
		)
	}
}
