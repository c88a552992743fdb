package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Password        string    `bson:"password" json:"-"`
	Role            UserRole  `bson:"role" json:"role"`
	PhotoURL        *string   `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	EnrolledCourses []string  `bson:"enrolled_courses" json:"enrolled_courses"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleInstructor UserRole = "instructor"
)

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r UserRole) bool {
	return r == UserRoleStudent || r == UserRoleInstructor
}
