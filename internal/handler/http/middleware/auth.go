package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/handler/http/dto"
	"coursehub/internal/usecase"
)

// SessionCookieName is the cookie carrying the session credential.
const SessionCookieName = "token"

// Authenticated verifies the session cookie and stores the user id in the
// gin context under "userID". Requests without a verifiable credential are
// aborted with 401.
func Authenticated(tokenService usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Success: false,
				Message: apperr.ErrUnauthorized.Error(),
			})
			return
		}

		userID, err := tokenService.VerifySessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Success: false,
				Message: apperr.ErrInvalidToken.Error(),
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
