package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aphia-Commerce/aphia-api/middleware"
	"github.com/Aphia-Commerce/aphia-api/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerRouter(t *testing.T, userID uuid.UUID, lookup middleware.OwnerLookup) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("userID", userID.String())
		}
	})
	r.PATCH("/things/:id", middleware.ResourceOwner("id", lookup), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func patch(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResourceOwnerAllowsOwner(t *testing.T) {
	owner := uuid.Must(uuid.NewV7())
	resource := uuid.Must(uuid.NewV7())

	r, reached := ownerRouter(t, owner, func(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
		require.Equal(t, resource, id)
		return owner, nil
	})

	w := patch(r, "/things/"+resource.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestResourceOwnerRejectsNonOwner(t *testing.T) {
	owner := uuid.Must(uuid.NewV7())
	stranger := uuid.Must(uuid.NewV7())

	r, reached := ownerRouter(t, stranger, func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
		return owner, nil
	})

	w := patch(r, "/things/"+uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached, "handler must not run for a non-owner")
}

func TestResourceOwnerUnknownResource(t *testing.T) {
	r, reached := ownerRouter(t, uuid.Must(uuid.NewV7()), func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
		return uuid.Nil, repository.ErrNotFound
	})

	w := patch(r, "/things/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, *reached)
}

func TestResourceOwnerMalformedID(t *testing.T) {
	lookupCalled := false
	r, reached := ownerRouter(t, uuid.Must(uuid.NewV7()), func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
		lookupCalled = true
		return uuid.Nil, nil
	})

	w := patch(r, "/things/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, lookupCalled, "a malformed id must never reach the store")
	assert.False(t, *reached)
}

func TestResourceOwnerUnauthenticated(t *testing.T) {
	r, reached := ownerRouter(t, uuid.Nil, func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
		return uuid.Nil, nil
	})

	w := patch(r, "/things/"+uuid.NewString())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}
