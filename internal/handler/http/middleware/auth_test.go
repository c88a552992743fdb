package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"coursehub/internal/handler/http/middleware"
	"coursehub/internal/handler/http/mocks"
)

func setupProtected(ts *mocks.MockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Authenticated(ts), func(c *gin.Context) {
		userID := c.GetString("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func TestAuthenticated_MissingCookie(t *testing.T) {
	r := setupProtected(&mocks.MockTokenService{ValidToken: "good", UserID: "u1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAuthenticated_BadToken(t *testing.T) {
	r := setupProtected(&mocks.MockTokenService{ValidToken: "good", UserID: "u1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthenticated_ValidToken(t *testing.T) {
	r := setupProtected(&mocks.MockTokenService{ValidToken: "good", UserID: "u1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
}
