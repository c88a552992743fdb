package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

// CourseDetail is a fully expanded course view: creator and lectures
// resolved.
type CourseDetail struct {
	*entity.Course
	CreatorInfo *CreatorInfo      `json:"creator_info,omitempty"`
	LectureList []*entity.Lecture `json:"lecture_list"`
}

// PurchaseWithCourse is a completed purchase with its course expanded.
type PurchaseWithCourse struct {
	*entity.Purchase
	Course *entity.Course `json:"course,omitempty"`
}

type IPurchaseUseCase interface {
	// CreateCheckoutSession creates a pending purchase and opens a gateway
	// checkout session, returning the redirect URL.
	CreateCheckoutSession(ctx context.Context, userID, courseID string) (string, error)
	// HandleWebhookEvent verifies and applies a gateway notification. A bad
	// signature returns apperr.ErrSignature; everything after a verified
	// signature is acknowledged, including replays and unknown sessions.
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
	// GetCourseDetailWithStatus returns the expanded course and whether a
	// completed purchase exists for the user.
	GetCourseDetailWithStatus(ctx context.Context, userID, courseID string) (*CourseDetail, bool, error)
	// GetAllPurchasedCourses lists completed purchases with courses expanded.
	GetAllPurchasedCourses(ctx context.Context) ([]*PurchaseWithCourse, error)
}
