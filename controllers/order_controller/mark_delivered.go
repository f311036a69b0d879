package order_controller

import (
	"log"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MarkDelivered godoc
// @Summary Mark an order delivered
// @Description Set the completion flag and delivery date on an order. Completion is one-way: completed can only be set to true.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param payload body models.MarkDeliveredRequest true "Delivery details"
// @Success 200 {object} models.ApiResponse "Order updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 422 {object} models.ApiResponse "Validation failed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/{orderId}/deliver [patch]
func MarkDelivered(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	validationRule := map[string]string{
		"delivery_date": "required",
		"completed":     "required|boolean",
	}

	validationMessage := map[string]string{
		"required": ":attribute is required",
		"boolean":  ":attribute must be a boolean",
	}

	if result := utils.Validate(payload, validationRule, validationMessage); !result.Success {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, result.Errors))
		return
	}

	// Completion never reverses; a false flag here is out of domain.
	if completed, _ := payload["completed"].(bool); !completed {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "completed must be true"))
		return
	}

	deliveryDateStr, _ := payload["delivery_date"].(string)
	deliveryDate, err := parseDate(deliveryDateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid delivery date"))
		return
	}

	orderIDStr := c.Param("orderId")
	if orderIDStr == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide Order ID"))
		return
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	matched, err := orders.MarkDelivered(ctx, orderID, deliveryDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[order.deliver] ✅ order %s marked delivered", orderID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully"))
}
