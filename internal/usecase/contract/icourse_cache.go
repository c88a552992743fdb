package contract

import (
	"context"
)

// CachedCourseList is the cached payload for the published-course listing.
type CachedCourseList struct {
	Courses []*CourseWithCreator `json:"courses"`
}

// ICourseCache caches the published-course listing. The cache is optional;
// usecases must behave identically with or without it.
type ICourseCache interface {
	GetPublishedCourses(ctx context.Context) (*CachedCourseList, bool, error)
	SetPublishedCourses(ctx context.Context, list *CachedCourseList) error
	InvalidatePublishedCourses(ctx context.Context) error
}
