package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/entity"
	"coursehub/internal/handler/http/dto"
	"coursehub/internal/handler/http/middleware"
	usecasecontract "coursehub/internal/usecase/contract"
)

const sessionCookieMaxAge = 3600

// UserHandler serves the account routes.
type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	config      usecasecontract.IConfigProvider
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		config:      config,
	}
}

// setSessionCookie writes the session credential. Production deployments
// serve the frontend cross-site, hence Secure + SameSite=None there and
// Lax + non-secure locally.
func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	if h.config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
}

func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	if h.config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}

// Register handles POST /user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password, entity.UserRole(req.Role))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: "Account created successfully.",
		User:    dto.ToUserResponse(user),
	})
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password, entity.UserRole(req.Role))
	if err != nil {
		RespondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: fmt.Sprintf("Welcome back %s", user.Name),
		User:    dto.ToUserResponse(user),
	})
}

// Logout handles GET /user/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	MessageHandler(c, http.StatusOK, "Logged out successfully.")
}

// GetProfile handles GET /user/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	profile, err := h.userUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		User:    dto.ToProfileResponse(profile),
	})
}

// GetMyCourses handles GET /user/my-course.
func (h *UserHandler) GetMyCourses(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}
	profile, err := h.userUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CoursesEnvelope{
		Success: true,
		Courses: profile.EnrolledCourses,
	})
}

// UpdateProfile handles PUT /user/profile/update (multipart).
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	photoPath := ""
	if file, err := c.FormFile("profilePhoto"); err == nil {
		photoPath = filepath.Join(os.TempDir(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, photoPath); err != nil {
			ErrorHandler(c, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		defer os.Remove(photoPath)
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, name, photoPath)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "Profile updated successfully.",
		User:    dto.ToUserResponse(user),
	})
}

// ForgotPassword handles POST /user/forgot-password. The response does not
// reveal whether the email is registered.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "If that email is registered, a reset token has been sent.")
}

// ResetPassword handles POST /user/forgetPassword/:id.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.ResetPassword(c.Request.Context(), c.Param("id"), req.NewPassword, req.ResetToken); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password reset successfully.")
}
