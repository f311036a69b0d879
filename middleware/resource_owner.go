package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Aphia-Commerce/aphia-api/config"
	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerLookup resolves a resource id to its owner. It returns
// repository.ErrNotFound when the resource is absent.
type OwnerLookup func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

// ResourceOwner is the generic "only the creator may mutate" guard: it
// resolves the resource named by the given route param and lets the chain
// proceed only when the requester is its owner.
func ResourceOwner(param string, lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
			c.Abort()
			return
		}

		idStr := c.Param(param)
		if idStr == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Please provide resource ID"))
			c.Abort()
			return
		}

		resourceID, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid resource ID"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		ownerID, err := lookup(ctx, resourceID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Resource not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ExceptionResponse(c, err))
			}
			c.Abort()
			return
		}

		if ownerID != userID {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You are not authorized to perform this action"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CheckCategoryCreator guards category mutations behind category ownership.
func CheckCategoryCreator(categories repository.CategoryRepository) gin.HandlerFunc {
	return ResourceOwner("id", func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		return category.UserID, nil
	})
}
