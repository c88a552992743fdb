package usecase

import (
	"context"
	"fmt"
	"time"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
	"coursehub/internal/infrastructure/uuidgen"
	usecasecontract "coursehub/internal/usecase/contract"
)

// LectureUsecase implements the lecture operations.
type LectureUsecase struct {
	lectureRepo  contract.ILectureRepository
	courseRepo   contract.ICourseRepository
	mediaService contract.IMediaService
	logger       usecasecontract.IAppLogger
	idGenerator  contract.IIDGenerator
}

// NewLectureUsecase creates a new LectureUsecase instance.
func NewLectureUsecase(
	lectureRepo contract.ILectureRepository,
	courseRepo contract.ICourseRepository,
	mediaService contract.IMediaService,
	logger usecasecontract.IAppLogger,
	idGenerator contract.IIDGenerator,
) *LectureUsecase {
	return &LectureUsecase{
		lectureRepo:  lectureRepo,
		courseRepo:   courseRepo,
		mediaService: mediaService,
		logger:       logger,
		idGenerator:  idGenerator,
	}
}

// check if LectureUsecase implements the ILectureUseCase
var _ usecasecontract.ILectureUseCase = (*LectureUsecase)(nil)

// CreateLecture creates a lecture shell with no video yet and appends it to
// the course's ordered lecture list.
func (uc *LectureUsecase) CreateLecture(ctx context.Context, courseID, title string) (*entity.Lecture, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: lecture title is required", apperr.ErrValidation)
	}
	if !uuidgen.IsValidID(courseID) {
		return nil, apperr.ErrInvalidID
	}
	if _, err := uc.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	lecture := &entity.Lecture{
		ID:           uc.idGenerator.NewID(),
		LectureTitle: title,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.lectureRepo.CreateLecture(ctx, lecture); err != nil {
		uc.logger.Errorf("failed to create lecture: %v", err)
		return nil, err
	}
	if err := uc.courseRepo.AppendLecture(ctx, courseID, lecture.ID); err != nil {
		uc.logger.Errorf("failed to append lecture %s to course %s: %v", lecture.ID, courseID, err)
		return nil, err
	}
	return lecture, nil
}

// GetCourseLectures returns the course's lectures in list order.
func (uc *LectureUsecase) GetCourseLectures(ctx context.Context, courseID string) ([]*entity.Lecture, error) {
	if !uuidgen.IsValidID(courseID) {
		return nil, apperr.ErrInvalidID
	}
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return uc.lectureRepo.GetLecturesByIDs(ctx, course.Lectures)
}

// EditLecture applies a partial update and re-links the lecture into the
// course's list if the reference went missing.
func (uc *LectureUsecase) EditLecture(ctx context.Context, courseID, lectureID string, update *usecasecontract.LectureUpdate) error {
	if !uuidgen.IsValidID(courseID) || !uuidgen.IsValidID(lectureID) {
		return apperr.ErrInvalidID
	}
	if _, err := uc.lectureRepo.GetLectureByID(ctx, lectureID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if update != nil {
		if update.LectureTitle != nil {
			updates["lecture_title"] = *update.LectureTitle
		}
		if update.VideoURL != nil {
			updates["video_url"] = *update.VideoURL
		}
		if update.PublicID != nil {
			updates["public_id"] = *update.PublicID
		}
		if update.IsPreviewFree != nil {
			updates["is_preview_free"] = *update.IsPreviewFree
		}
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := uc.lectureRepo.UpdateLecture(ctx, lectureID, updates); err != nil {
			return err
		}
	}

	return uc.courseRepo.LinkLecture(ctx, courseID, lectureID)
}

// RemoveLecture deletes the lecture, destroys its video asset best effort
// and pulls its reference from every course listing it.
func (uc *LectureUsecase) RemoveLecture(ctx context.Context, lectureID string) error {
	if !uuidgen.IsValidID(lectureID) {
		return apperr.ErrInvalidID
	}
	lecture, err := uc.lectureRepo.DeleteLecture(ctx, lectureID)
	if err != nil {
		return err
	}

	if lecture.PublicID != "" {
		if err := uc.mediaService.DestroyVideo(ctx, lecture.PublicID); err != nil {
			uc.logger.Warnf("failed to destroy lecture video %s: %v", lecture.PublicID, err)
		}
	}
	return uc.courseRepo.PullLectureRef(ctx, lectureID)
}

func (uc *LectureUsecase) GetLectureByID(ctx context.Context, lectureID string) (*entity.Lecture, error) {
	if !uuidgen.IsValidID(lectureID) {
		return nil, apperr.ErrInvalidID
	}
	return uc.lectureRepo.GetLectureByID(ctx, lectureID)
}
