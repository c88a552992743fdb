package dto

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ForgotPasswordRequest is the body of POST /user/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /user/forgetPassword/:id.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	ResetToken  string `json:"resetToken"`
}

// CreateCourseRequest is the body of POST /course/create.
type CreateCourseRequest struct {
	CourseTitle string `json:"courseTitle"`
	Category    string `json:"category"`
}

// CreateLectureRequest is the body of POST /course/:courseId/lecture.
type CreateLectureRequest struct {
	LectureTitle string `json:"lectureTitle"`
}

// VideoInfo carries the uploaded video's URL and asset identifier.
type VideoInfo struct {
	VideoURL string `json:"videoUrl"`
	PublicID string `json:"publicId"`
}

// EditLectureRequest is the body of PUT /course/:courseId/lecture/:lectureId.
type EditLectureRequest struct {
	LectureTitle  *string    `json:"lectureTitle"`
	VideoInfo     *VideoInfo `json:"videoInfo"`
	IsPreviewFree *bool      `json:"isPreviewFree"`
}

// CheckoutRequest is the body of POST
// /purchase/checkout/create-checkout-session.
type CheckoutRequest struct {
	CourseID string `json:"courseId"`
}
