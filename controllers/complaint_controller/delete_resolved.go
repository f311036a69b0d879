package complaint_controller

import (
	"fmt"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
)

// DeleteResolved godoc
// @Summary Bulk-delete resolved complaints
// @Description Remove every resolved complaint; reports how many were deleted
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /complaints [delete]
func DeleteResolved(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	deleted, err := complaints.DeleteResolved(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No resolved complaints found for deletion."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c,
		fmt.Sprintf("Successfully deleted %d resolved complaints.", deleted)))
}
