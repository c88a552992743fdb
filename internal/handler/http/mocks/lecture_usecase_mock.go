package mocks

import (
	"context"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/entity"
	usecasecontract "coursehub/internal/usecase/contract"
)

// MockLectureUsecase is a flag-driven mock of the lecture usecase.
type MockLectureUsecase struct {
	ShouldFailCreate  bool
	ShouldFailList    bool
	ShouldFailEdit    bool
	ShouldFailRemove  bool
	ShouldFailGetByID bool

	MockLecture entity.Lecture
}

var _ usecasecontract.ILectureUseCase = (*MockLectureUsecase)(nil)

func NewMockLectureUsecase() *MockLectureUsecase {
	return &MockLectureUsecase{
		MockLecture: entity.Lecture{
			ID:           "3c1a7a93-5a1a-4f83-8f57-6e9a1f2b4c6d",
			LectureTitle: "Test Lecture",
		},
	}
}

func (m *MockLectureUsecase) CreateLecture(ctx context.Context, courseID, title string) (*entity.Lecture, error) {
	if m.ShouldFailCreate {
		return nil, apperr.ErrValidation
	}
	return &m.MockLecture, nil
}

func (m *MockLectureUsecase) GetCourseLectures(ctx context.Context, courseID string) ([]*entity.Lecture, error) {
	if m.ShouldFailList {
		return nil, apperr.ErrNotFound
	}
	return []*entity.Lecture{&m.MockLecture}, nil
}

func (m *MockLectureUsecase) EditLecture(ctx context.Context, courseID, lectureID string, update *usecasecontract.LectureUpdate) error {
	if m.ShouldFailEdit {
		return apperr.ErrNotFound
	}
	return nil
}

func (m *MockLectureUsecase) RemoveLecture(ctx context.Context, lectureID string) error {
	if m.ShouldFailRemove {
		return apperr.ErrNotFound
	}
	return nil
}

func (m *MockLectureUsecase) GetLectureByID(ctx context.Context, lectureID string) (*entity.Lecture, error) {
	if m.ShouldFailGetByID {
		return nil, apperr.ErrNotFound
	}
	return &m.MockLecture, nil
}
