package routes

import (
	"github.com/Aphia-Commerce/aphia-api/controllers/category_controller"
	"github.com/Aphia-Commerce/aphia-api/middleware"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes registers category mutations behind the creator guard.
func SetupCategoryRoutes(router *gin.RouterGroup, repos *repository.Repositories) {
	categories := router.Group("/categories")
	categories.Use(middleware.AuthMiddleware())
	{
		guard := middleware.CheckCategoryCreator(repos.Categories)
		categories.PATCH("/:id", guard, category_controller.UpdateCategory)
		categories.DELETE("/:id", guard, category_controller.DeleteCategory)
	}
}
