package mocks

import (
	"context"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/entity"
	usecasecontract "coursehub/internal/usecase/contract"
)

// MockCourseUsecase is a flag-driven mock of the course usecase.
type MockCourseUsecase struct {
	ShouldFailCreate        bool
	ShouldFailGetByID       bool
	ShouldFailEdit          bool
	ShouldFailListPublished bool
	ShouldFailSearch        bool
	ShouldFailToggle        bool

	MockCourse    entity.Course
	MockPublished []*usecasecontract.CourseWithCreator

	// captured search arguments
	LastQuery       string
	LastCategories  []string
	LastSortByPrice string
}

var _ usecasecontract.ICourseUseCase = (*MockCourseUsecase)(nil)

func NewMockCourseUsecase() *MockCourseUsecase {
	return &MockCourseUsecase{
		MockCourse: entity.Course{
			ID:               "7f0d7e62-98a1-4a52-b6ad-3f36e3a2f0cd",
			CourseTitle:      "Test Course",
			Category:         "Programming",
			Creator:          "a2e9f3a8-0c3b-4f97-9f25-5b6f2a9d1e10",
			Lectures:         []string{},
			EnrolledStudents: []string{},
		},
		MockPublished: []*usecasecontract.CourseWithCreator{},
	}
}

func (m *MockCourseUsecase) CreateCourse(ctx context.Context, title, category, creatorID string) (*entity.Course, error) {
	if m.ShouldFailCreate {
		return nil, apperr.ErrValidation
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) GetCreatorCourses(ctx context.Context, creatorID string) ([]*entity.Course, error) {
	return []*entity.Course{&m.MockCourse}, nil
}

func (m *MockCourseUsecase) GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error) {
	if m.ShouldFailGetByID {
		return nil, apperr.ErrNotFound
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) EditCourse(ctx context.Context, courseID string, update *usecasecontract.CourseUpdate, thumbnailPath string) (*entity.Course, error) {
	if m.ShouldFailEdit {
		return nil, apperr.ErrNotFound
	}
	return &m.MockCourse, nil
}

func (m *MockCourseUsecase) GetPublishedCourses(ctx context.Context) ([]*usecasecontract.CourseWithCreator, error) {
	if m.ShouldFailListPublished {
		return nil, apperr.ErrNotFound
	}
	return m.MockPublished, nil
}

func (m *MockCourseUsecase) SearchCourses(ctx context.Context, query string, categories []string, sortByPrice string) ([]*usecasecontract.CourseWithCreator, error) {
	if m.ShouldFailSearch {
		return nil, apperr.ErrValidation
	}
	m.LastQuery = query
	m.LastCategories = categories
	m.LastSortByPrice = sortByPrice
	return m.MockPublished, nil
}

func (m *MockCourseUsecase) TogglePublish(ctx context.Context, courseID string, publish bool) (string, error) {
	if m.ShouldFailToggle {
		return "", apperr.ErrNotFound
	}
	if publish {
		return "Course is Published", nil
	}
	return "Course is Unpublished", nil
}
