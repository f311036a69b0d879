package order_controller

import (
	"errors"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOrderDetails godoc
// @Summary Get one order
// @Description Retrieve a single order; only its owner may see it
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.ApiResponse{message=models.Order}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Not the order owner"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/{orderId} [get]
func GetOrderDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderIDStr := c.Param("orderId")
	if orderIDStr == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide Order ID"))
		return
	}

	// An unparseable id can never resolve, so it reads as not-found rather
	// than leaking whether the id space is UUIDs.
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order is not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order is not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	if order.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You are not authorized to access this resource"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, order))
}
