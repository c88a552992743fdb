package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

// Profile is a user with their enrolled courses expanded; each course
// carries its creator resolved to name and photo.
type Profile struct {
	User            *entity.User         `json:"user"`
	EnrolledCourses []*CourseWithCreator `json:"enrolled_courses"`
}

type IUserUseCase interface {
	// Register creates a user with a hashed credential. Missing fields fail
	// with apperr.ErrValidation, duplicate email with apperr.ErrConflict.
	Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error)
	// Login verifies email, password and role, returning the user and a
	// signed session token. All three failure modes answer with the same
	// apperr.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// GetProfile returns the user with enrolled courses expanded.
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// UpdateProfile updates the name and/or profile photo. photoPath is the
	// local path of a newly uploaded file; empty means keep the current one.
	UpdateProfile(ctx context.Context, userID, name, photoPath string) (*entity.User, error)
	// ForgotPassword emails a one-time reset token. It reveals nothing about
	// whether the email is registered.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword replaces the user's password after proving possession of
	// the emailed reset token.
	ResetPassword(ctx context.Context, userID, newPassword, resetToken string) error
}
