package order_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/services"
	"github.com/Aphia-Commerce/aphia-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrder godoc
// @Summary Create new order
// @Description Create a new order with address, contact and product line items
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.ApiResponse "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 422 {object} models.ApiResponse "Validation failed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	validationRule := map[string]string{
		"street_address":         "required|string",
		"city":                   "required|string",
		"state":                  "required|string",
		"postal_code":            "string",
		"phone_number":           "required|string",
		"alternate_phone_number": "string",
		"products":               "required|array",
		"amount":                 "required",
	}

	validationMessage := map[string]string{
		"required": ":attribute is required",
		"string":   ":attribute must be a string",
		"array":    ":attribute must be an array",
	}

	if result := utils.Validate(payload, validationRule, validationMessage); !result.Success {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, result.Errors))
		return
	}

	var req models.CreateOrderRequest
	raw, _ := json.Marshal(payload)
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Malformed order fields"))
		return
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := parseDate(req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order date"))
			return
		}
		orderDate = parsed
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := parseDate(req.DeliveryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid delivery date"))
			return
		}
		deliveryDate = &parsed
	}

	order := models.Order{
		UserID:               userID,
		StreetAddress:        req.StreetAddress,
		City:                 req.City,
		State:                req.State,
		PostalCode:           req.PostalCode,
		PhoneNumber:          req.PhoneNumber,
		AlternatePhoneNumber: req.AlternatePhoneNumber,
		Amount:               req.Amount,
		Currency:             req.Currency,
		OrderDate:            orderDate,
		DeliveryDate:         deliveryDate,
		TxRef:                req.TxRef,
		OrderRef:             utils.NewOrderRef(),
		Completed:            false,
	}
	for _, item := range req.Products {
		order.Products = append(order.Products, models.OrderLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := orders.Create(ctx, &order); err != nil {
		log.Printf("[order.create] ❌ failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}

	// Confirmation email is best-effort: the order is already durable, so a
	// mail failure must never surface on this request.
	if user, err := users.GetByID(ctx, userID); err != nil {
		log.Printf("[order.create] could not load user %s for confirmation email: %v", userID, err)
	} else {
		mailer.DispatchAsync("order_created", services.BuildOrderCreatedEmail(user, order))
	}

	log.Printf("[order.create] ✅ order %s (%s) created for user %s", order.OrderRef, order.ID, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, gin.H{
		"order":  order,
		"tx_ref": order.TxRef,
	}))
}
