package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/handler/http/dto"
)

// ErrorHandler centralizes error responses.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Success: false, Message: message})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Success: true, Message: message})
}

// BindAndValidate binds a JSON request body and answers 400 on failure.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// RespondError translates a usecase error to its HTTP status in one place,
// so a given failure always answers with the same status no matter which
// handler raised it.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrInvalidID),
		errors.Is(err, apperr.ErrSignature),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrResetToken),
		errors.Is(err, apperr.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized),
		errors.Is(err, apperr.ErrInvalidToken):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrGateway),
		errors.Is(err, apperr.ErrUpload):
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// CurrentUserID returns the authenticated user's id set by the auth
// middleware, answering 401 when it is missing.
func CurrentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, apperr.ErrUnauthorized.Error())
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		ErrorHandler(c, http.StatusUnauthorized, apperr.ErrUnauthorized.Error())
		return "", false
	}
	return id, true
}
