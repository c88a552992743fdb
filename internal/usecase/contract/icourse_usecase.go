package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

// CreatorInfo is the subset of a creator's record exposed on course listings.
type CreatorInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// CourseWithCreator is a course with its creator resolved.
type CourseWithCreator struct {
	*entity.Course
	CreatorInfo *CreatorInfo `json:"creator_info,omitempty"`
}

// CourseUpdate carries the optional fields of a course edit. Nil fields keep
// their prior values.
type CourseUpdate struct {
	CourseTitle *string
	SubTitle    *string
	Description *string
	Category    *string
	CourseLevel *entity.CourseLevel
	CoursePrice *float64
}

type ICourseUseCase interface {
	CreateCourse(ctx context.Context, title, category, creatorID string) (*entity.Course, error)
	GetCreatorCourses(ctx context.Context, creatorID string) ([]*entity.Course, error)
	GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error)
	// EditCourse applies a partial update. thumbnailPath is the local path of
	// a newly uploaded thumbnail; empty keeps the current one.
	EditCourse(ctx context.Context, courseID string, update *CourseUpdate, thumbnailPath string) (*entity.Course, error)
	// GetPublishedCourses lists published courses with creators resolved. An
	// empty catalog is an empty slice, not an error.
	GetPublishedCourses(ctx context.Context) ([]*CourseWithCreator, error)
	SearchCourses(ctx context.Context, query string, categories []string, sortByPrice string) ([]*CourseWithCreator, error)
	// TogglePublish flips the published flag and returns a human-readable
	// status message.
	TogglePublish(ctx context.Context, courseID string, publish bool) (string, error)
}
