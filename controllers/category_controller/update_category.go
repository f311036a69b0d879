package category_controller

import (
	"errors"
	"net/http"

	product_cache "github.com/Aphia-Commerce/aphia-api/cache"
	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Rename or re-describe a category; the ownership guard on the route ensures only the creator gets here
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param payload body models.UpdateCategoryRequest true "Category fields"
// @Success 200 {object} models.ApiResponse{message=models.Category}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide category name"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := categories.Update(ctx, &category); err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	// Vendor views embed category ids; drop any stale product indexes.
	product_cache.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, category))
}
