package contract

import (
	"context"

	"coursehub/internal/domain/entity"
)

type ILectureRepository interface {
	CreateLecture(ctx context.Context, lecture *entity.Lecture) error
	GetLectureByID(ctx context.Context, id string) (*entity.Lecture, error)
	// GetLecturesByIDs returns the lectures for the given IDs preserving the
	// order of ids (the course's lecture list is ordered).
	GetLecturesByIDs(ctx context.Context, ids []string) ([]*entity.Lecture, error)
	UpdateLecture(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteLecture(ctx context.Context, id string) (*entity.Lecture, error)
}
