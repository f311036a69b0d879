package order_controller

import (
	"net/http"
	"time"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/Aphia-Commerce/aphia-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	mailer   *services.Dispatcher
)

// Init wires the package's handlers to their collaborators. Call once at
// startup, before registering routes.
func Init(repos *repository.Repositories, dispatcher *services.Dispatcher) {
	orders = repos.Orders
	products = repos.Products
	users = repos.Users
	mailer = dispatcher
}

// currentUserID pulls the authenticated user from the gin context. It writes
// the 401 response itself and reports false when there is no usable identity.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "You are not logged in. Please login to continue"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// parseDate accepts RFC3339 or plain dates, the two formats clients send.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
