package order_controller

import (
	"net/http"

	product_cache "github.com/Aphia-Commerce/aphia-api/cache"
	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// GetVendorOrders godoc
// @Summary Vendor order view
// @Description Per-order fulfillment view restricted to line items owned by the calling vendor
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{message=[]models.VendorOrderView}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "No matching orders"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/vendor [get]
func GetVendorOrders(c *gin.Context) {
	vendorID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	allOrders, err := orders.ListAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
		return
	}
	if len(allOrders) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No order present"))
		return
	}

	catalog, cached := product_cache.Get(vendorID)
	if !cached {
		catalog, err = products.ListByOwner(ctx, vendorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
			return
		}
		product_cache.Set(vendorID, catalog)
	}

	// Indexing the vendor's catalog up front turns the order×item scan into
	// map lookups instead of a per-item product fetch.
	byID := lo.KeyBy(catalog, func(p models.Product) uuid.UUID { return p.ID })

	vendorOrders := make([]models.VendorOrderView, 0)
	for _, order := range allOrders {
		var matched []models.VendorOrderProduct
		for _, item := range order.Products {
			product, owned := byID[item.ProductID]
			if !owned {
				continue
			}
			matched = append(matched, models.VendorOrderProduct{
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       item.Price,
				CategoryID:  product.CategoryID,
				Image:       product.PrimaryImage(),
			})
		}

		// Orders with no line items of this vendor's never show up.
		if len(matched) == 0 {
			continue
		}

		vendorOrders = append(vendorOrders, models.VendorOrderView{
			OrderID:   order.ID,
			Completed: order.Completed,
			Date:      order.OrderDate,
			Products:  matched,
		})
	}

	if len(vendorOrders) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "You have no order for your products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, vendorOrders))
}
