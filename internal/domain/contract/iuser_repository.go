package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// AddEnrolledCourse adds a course reference to the user's enrolled set.
	// The underlying write is a set-add, so re-applying it is a no-op.
	AddEnrolledCourse(ctx context.Context, userID, courseID string) error
}
