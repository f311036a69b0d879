package routes

import (
	"time"

	"github.com/Aphia-Commerce/aphia-api/controllers/complaint_controller"
	"github.com/Aphia-Commerce/aphia-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupComplaintRoutes registers the complaint ticketing endpoints.
func SetupComplaintRoutes(router *gin.RouterGroup) {
	complaints := router.Group("/complaints")
	complaints.Use(middleware.AuthMiddleware())
	{
		complaints.POST("", complaint_controller.MakeComplaint)

		admin := complaints.Group("")
		admin.Use(middleware.AdminMiddleware(), middleware.RateLimiter(100, time.Minute))
		{
			admin.PATCH("/:ticketNo/resolve", complaint_controller.ResolveComplaint)
			admin.DELETE("", complaint_controller.DeleteResolved)
		}
	}
}
