package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteOrder godoc
// @Summary Cancel an order
// @Description Delete a non-completed order together with its payment records; only the owner may cancel
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.ApiResponse "Order deleted successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Not the order owner"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 409 {object} models.ApiResponse "Order already completed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/{orderId} [delete]
func DeleteOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderIDStr := c.Param("orderId")
	if orderIDStr == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide Order ID"))
		return
	}

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

	if order.Completed {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "You cannot delete a completed order"))
		return
	}

	// Payments are removed before the order, in one transaction; the delete
	// itself re-checks the completion flag in case the order completed
	// between our read and this write.
	if err := orders.DeleteWithPayments(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "You cannot delete a completed order"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	log.Printf("[order.delete] ✅ order %s deleted by user %s", orderID, userID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order deleted successfully"))
}
