package middleware

import (
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"

	"coursehub/internal/handler/http/dto"
)

// RateLimiter adapts a tollbooth limiter to gin.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpError != nil {
			c.AbortWithStatusJSON(httpError.StatusCode, dto.ErrorResponse{
				Success: false,
				Message: httpError.Message,
			})
			return
		}
		c.Next()
	}
}
