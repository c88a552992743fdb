package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "coursehub/internal/handler/http"
	"coursehub/internal/handler/http/dto"
	"coursehub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupUserRouter(h *handler.UserHandler) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/forgetPassword/:id", h.ResetPassword)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret1",
		Role:     "student",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Account created successfully")
	assert.Contains(t, w.Body.String(), `"email":"test@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RegisterConflict = true
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret1",
		Role:     "student",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "secret1",
		Role:     "student",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome back Test User")

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			session = c
		}
	}
	if assert.NotNil(t, session) {
		assert.Equal(t, "mock_session_token", session.Value)
		assert.True(t, session.HttpOnly)
		assert.Equal(t, 3600, session.MaxAge)
		assert.False(t, session.Secure)
	}
}

func TestLogin_ProductionCookieAttributes(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{Production: true})
	r := setupUserRouter(h)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "secret1",
		Role:     "student",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			session = c
		}
	}
	if assert.NotNil(t, session) {
		assert.True(t, session.Secure)
		assert.Equal(t, http.SameSiteNoneMode, session.SameSite)
	}
}

func TestLogin_UniformFailure(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "unknown@example.com",
		Password: "wrong",
		Role:     "instructor",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect email or password")
	assert.Empty(t, w.Result().Cookies())
}

func TestLogout_ClearsCookie(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			session = c
		}
	}
	if assert.NotNil(t, session) {
		assert.Empty(t, session.Value)
		assert.True(t, session.MaxAge < 0)
	}
}

func TestResetPassword_InvalidToken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailResetPassword = true
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/forgetPassword/a2e9f3a8-0c3b-4f97-9f25-5b6f2a9d1e10", dto.ResetPasswordRequest{
		NewPassword: "newsecret",
		ResetToken:  "bogus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reset token")
}

func TestResetPassword_UnknownUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ResetPasswordNotFound = true
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/forgetPassword/11111111-2222-3333-4444-555555555555", dto.ResetPasswordRequest{
		NewPassword: "newsecret",
		ResetToken:  "sometoken",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForgotPassword_AlwaysOK(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase, &mocks.MockConfig{})
	r := setupUserRouter(h)

	w := postJSON(r, "/forgot-password", dto.ForgotPasswordRequest{Email: "whoever@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
