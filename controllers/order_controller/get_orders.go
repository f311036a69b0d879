package order_controller

import (
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/middleware"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List orders
// @Description Without a status query: all orders owned by the caller. With ?status=pending|completed: admin-only listing across all users.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Admin status filter" Enums(pending, completed)
// @Success 200 {object} models.ApiResponse{message=[]models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid status value"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Admin access required"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		getOrdersByStatus(c, status)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	userOrders, err := orders.ListByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	// An empty order history is still a successful (empty) result.
	if userOrders == nil {
		userOrders = []models.Order{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, userOrders))
}

// getOrdersByStatus is the admin listing. The status filter is checked
// before any store access: only pending and completed are in-domain.
func getOrdersByStatus(c *gin.Context, status string) {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
		return
	}

	var completed bool
	switch status {
	case "pending":
		completed = false
	case "completed":
		completed = true
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	filtered, err := orders.ListByCompleted(ctx, completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	if filtered == nil {
		filtered = []models.Order{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, filtered))
}
