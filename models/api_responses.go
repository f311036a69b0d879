package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the uniform envelope for every endpoint. Message carries
// either a human-readable string or the requested payload; Error is only set
// for unexpected failures.
type ApiResponse struct {
	Success bool         `json:"success"`
	Message any          `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message any) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Rate:    getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, message any) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
		Rate:    getRateFromContext(c),
	}
}

// ExceptionResponse is for unexpected failures (store or downstream errors).
func ExceptionResponse(c *gin.Context, err error) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err.Error(),
		Rate:    getRateFromContext(c),
	}
}
