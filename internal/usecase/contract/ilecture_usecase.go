package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

// LectureUpdate carries the optional fields of a lecture edit. Nil fields
// keep their prior values.
type LectureUpdate struct {
	LectureTitle  *string
	VideoURL      *string
	PublicID      *string
	IsPreviewFree *bool
}

type ILectureUseCase interface {
	// CreateLecture creates a lecture with empty video fields and appends it
	// to the course's lecture list.
	CreateLecture(ctx context.Context, courseID, title string) (*entity.Lecture, error)
	// GetCourseLectures returns the course's lectures in list order.
	GetCourseLectures(ctx context.Context, courseID string) ([]*entity.Lecture, error)
	// EditLecture applies a partial update and re-links the lecture into the
	// course's list if it is not already referenced.
	EditLecture(ctx context.Context, courseID, lectureID string, update *LectureUpdate) error
	// RemoveLecture deletes the lecture, best-effort-destroys its video
	// asset and pulls its reference from every course listing it.
	RemoveLecture(ctx context.Context, lectureID string) error
	GetLectureByID(ctx context.Context, lectureID string) (*entity.Lecture, error)
}
