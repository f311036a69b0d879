package category_controller

import (
	"net/http"

	product_cache "github.com/Aphia-Commerce/aphia-api/cache"
	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Remove a category; the ownership guard on the route ensures only the creator gets here
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse "Category deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	matched, err := categories.Delete(ctx, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	product_cache.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully"))
}
