package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

// CourseSearchOptions encapsulates the published-course search parameters.
type CourseSearchOptions struct {
	// Query is matched case-insensitively against title and subtitle.
	// An empty query matches everything.
	Query string
	// Categories restricts results to courses whose category equals one of
	// the given values, case-insensitively. Empty means no restriction.
	Categories []string
	// SortByPrice is "lowTohigh", "highTolow" or empty for store order.
	SortByPrice string
}

type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	GetCoursesByCreator(ctx context.Context, creatorID string) ([]*entity.Course, error)
	GetPublishedCourses(ctx context.Context) ([]*entity.Course, error)
	SearchCourses(ctx context.Context, opts *CourseSearchOptions) ([]*entity.Course, error)
	// UpdateCourse applies the given field updates and returns the updated record.
	UpdateCourse(ctx context.Context, id string, updates map[string]interface{}) (*entity.Course, error)
	// AppendLecture appends a lecture reference to the course's ordered list.
	AppendLecture(ctx context.Context, courseID, lectureID string) error
	// LinkLecture adds the lecture reference if it is not already present.
	LinkLecture(ctx context.Context, courseID, lectureID string) error
	// PullLectureRef removes the lecture reference from every course that
	// lists it. Lectures carry no parent pointer, so removal goes by
	// membership.
	PullLectureRef(ctx context.Context, lectureID string) error
	// AddEnrolledStudent adds a user reference to the course's enrolled set.
	AddEnrolledStudent(ctx context.Context, courseID, userID string) error
}
