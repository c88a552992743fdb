package dto

import (
	"time"

	"coursehub/internal/domain/entity"
	usecasecontract "coursehub/internal/usecase/contract"
)

// UserResponse is the sanitized DTO for a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	PhotoURL        *string  `json:"photo_url,omitempty"`
	EnrolledCourses []string `json:"enrolled_courses"`
	CreatedAt       string   `json:"created_at"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	enrolled := user.EnrolledCourses
	if enrolled == nil {
		enrolled = []string{}
	}
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		PhotoURL:        user.PhotoURL,
		EnrolledCourses: enrolled,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

// ProfileResponse is a user with enrolled courses expanded.
type ProfileResponse struct {
	UserResponse
	EnrolledCourseList []*usecasecontract.CourseWithCreator `json:"enrolled_course_list"`
}

// ToProfileResponse converts a usecase profile to its DTO.
func ToProfileResponse(profile *usecasecontract.Profile) ProfileResponse {
	return ProfileResponse{
		UserResponse:       ToUserResponse(profile.User),
		EnrolledCourseList: profile.EnrolledCourses,
	}
}

// MessageResponse is the envelope for message-only responses.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserEnvelope wraps a user payload.
type UserEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    interface{} `json:"user"`
}

// CourseEnvelope wraps a single course payload.
type CourseEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Course  interface{} `json:"course"`
}

// CoursesEnvelope wraps a course list payload.
type CoursesEnvelope struct {
	Success bool        `json:"success"`
	Courses interface{} `json:"courses"`
}

// LectureEnvelope wraps a single lecture payload.
type LectureEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Lecture *entity.Lecture `json:"lecture"`
}

// LecturesEnvelope wraps a lecture list payload.
type LecturesEnvelope struct {
	Success  bool              `json:"success"`
	Lectures []*entity.Lecture `json:"lectures"`
}

// CheckoutEnvelope carries the gateway redirect URL.
type CheckoutEnvelope struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// CourseDetailEnvelope carries the expanded course plus purchase status.
type CourseDetailEnvelope struct {
	Success   bool                          `json:"success"`
	Course    *usecasecontract.CourseDetail `json:"course"`
	Purchased bool                          `json:"purchased"`
}

// PurchasedCoursesEnvelope carries completed purchases with courses.
type PurchasedCoursesEnvelope struct {
	Success         bool                                  `json:"success"`
	PurchasedCourse []*usecasecontract.PurchaseWithCourse `json:"purchasedCourse"`
}

// UploadData is the payload of a successful media upload.
type UploadData struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadEnvelope wraps a media upload result.
type UploadEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    UploadData `json:"data"`
}
