package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
	"coursehub/internal/infrastructure/uuidgen"
	usecasecontract "coursehub/internal/usecase/contract"
)

// CourseUsecase implements the course catalog operations.
type CourseUsecase struct {
	courseRepo   contract.ICourseRepository
	userRepo     contract.IUserRepository
	mediaService contract.IMediaService
	logger       usecasecontract.IAppLogger
	idGenerator  contract.IIDGenerator
	cache        usecasecontract.ICourseCache
}

// NewCourseUsecase creates a new CourseUsecase instance.
func NewCourseUsecase(
	courseRepo contract.ICourseRepository,
	userRepo contract.IUserRepository,
	mediaService contract.IMediaService,
	logger usecasecontract.IAppLogger,
	idGenerator contract.IIDGenerator,
) *CourseUsecase {
	return &CourseUsecase{
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		mediaService: mediaService,
		logger:       logger,
		idGenerator:  idGenerator,
	}
}

// check if CourseUsecase implements the ICourseUseCase
var _ usecasecontract.ICourseUseCase = (*CourseUsecase)(nil)

// SetCourseCache attaches the optional published-course cache. Without it
// every listing goes to the database.
func (uc *CourseUsecase) SetCourseCache(cache usecasecontract.ICourseCache) {
	uc.cache = cache
}

// resolveCreator looks the creator up for embedding in course payloads. A
// missing or failed lookup yields nil rather than failing the listing.
func resolveCreator(ctx context.Context, userRepo contract.IUserRepository, logger usecasecontract.IAppLogger, creatorID string) *usecasecontract.CreatorInfo {
	creator, err := userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			logger.Warnf("failed to resolve course creator %s: %v", creatorID, err)
		}
		return nil
	}
	return &usecasecontract.CreatorInfo{
		ID:       creator.ID,
		Name:     creator.Name,
		PhotoURL: creator.PhotoURL,
	}
}

func (uc *CourseUsecase) CreateCourse(ctx context.Context, title, category, creatorID string) (*entity.Course, error) {
	if title == "" || category == "" {
		return nil, fmt.Errorf("%w: course title and category are required", apperr.ErrValidation)
	}
	if !uuidgen.IsValidID(creatorID) {
		return nil, apperr.ErrInvalidID
	}

	course := &entity.Course{
		ID:               uc.idGenerator.NewID(),
		CourseTitle:      title,
		Category:         category,
		Creator:          creatorID,
		IsPublished:      false,
		Lectures:         []string{},
		EnrolledStudents: []string{},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := uc.courseRepo.CreateCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to create course: %v", err)
		return nil, err
	}
	return course, nil
}

func (uc *CourseUsecase) GetCreatorCourses(ctx context.Context, creatorID string) ([]*entity.Course, error) {
	if !uuidgen.IsValidID(creatorID) {
		return nil, apperr.ErrInvalidID
	}
	return uc.courseRepo.GetCoursesByCreator(ctx, creatorID)
}

func (uc *CourseUsecase) GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error) {
	if !uuidgen.IsValidID(courseID) {
		return nil, apperr.ErrInvalidID
	}
	return uc.courseRepo.GetCourseByID(ctx, courseID)
}

// EditCourse applies a partial update. A replaced thumbnail's old asset is
// destroyed best effort.
func (uc *CourseUsecase) EditCourse(ctx context.Context, courseID string, update *usecasecontract.CourseUpdate, thumbnailPath string) (*entity.Course, error) {
	course, err := uc.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update != nil {
		if update.CourseTitle != nil {
			updates["course_title"] = *update.CourseTitle
		}
		if update.SubTitle != nil {
			updates["sub_title"] = *update.SubTitle
		}
		if update.Description != nil {
			updates["description"] = *update.Description
		}
		if update.Category != nil {
			updates["category"] = *update.Category
		}
		if update.CourseLevel != nil {
			updates["course_level"] = string(*update.CourseLevel)
		}
		if update.CoursePrice != nil {
			updates["course_price"] = *update.CoursePrice
		}
	}

	if thumbnailPath != "" {
		result, err := uc.mediaService.Upload(ctx, thumbnailPath)
		if err != nil {
			uc.logger.Errorf("failed to upload thumbnail for course %s: %v", courseID, err)
			return nil, err
		}
		if course.CourseThumbnail != nil && *course.CourseThumbnail != "" {
			oldID := uc.mediaService.PublicIDFromURL(*course.CourseThumbnail)
			if err := uc.mediaService.Destroy(ctx, oldID); err != nil {
				uc.logger.Warnf("failed to destroy old thumbnail %s: %v", oldID, err)
			}
		}
		updates["course_thumbnail"] = result.URL
	}

	if len(updates) == 0 {
		return course, nil
	}
	updates["updated_at"] = time.Now()

	updated, err := uc.courseRepo.UpdateCourse(ctx, courseID, updates)
	if err != nil {
		return nil, err
	}
	uc.invalidatePublishedCache(ctx)
	return updated, nil
}

// GetPublishedCourses lists every published course, creators resolved. An
// empty catalog is a successful empty list.
func (uc *CourseUsecase) GetPublishedCourses(ctx context.Context) ([]*usecasecontract.CourseWithCreator, error) {
	if uc.cache != nil {
		cached, hit, err := uc.cache.GetPublishedCourses(ctx)
		if err != nil {
			uc.logger.Warnf("published-course cache read failed: %v", err)
		} else if hit {
			return cached.Courses, nil
		}
	}

	courses, err := uc.courseRepo.GetPublishedCourses(ctx)
	if err != nil {
		return nil, err
	}
	result := uc.withCreators(ctx, courses)

	if uc.cache != nil {
		if err := uc.cache.SetPublishedCourses(ctx, &usecasecontract.CachedCourseList{Courses: result}); err != nil {
			uc.logger.Warnf("published-course cache write failed: %v", err)
		}
	}
	return result, nil
}

func (uc *CourseUsecase) SearchCourses(ctx context.Context, query string, categories []string, sortByPrice string) ([]*usecasecontract.CourseWithCreator, error) {
	courses, err := uc.courseRepo.SearchCourses(ctx, &contract.CourseSearchOptions{
		Query:       query,
		Categories:  categories,
		SortByPrice: sortByPrice,
	})
	if err != nil {
		return nil, err
	}
	return uc.withCreators(ctx, courses), nil
}

// TogglePublish flips the published flag and returns the status message
// shown to the instructor.
func (uc *CourseUsecase) TogglePublish(ctx context.Context, courseID string, publish bool) (string, error) {
	if !uuidgen.IsValidID(courseID) {
		return "", apperr.ErrInvalidID
	}
	_, err := uc.courseRepo.UpdateCourse(ctx, courseID, map[string]interface{}{
		"is_published": publish,
		"updated_at":   time.Now(),
	})
	if err != nil {
		return "", err
	}
	uc.invalidatePublishedCache(ctx)

	if publish {
		return "Course is Published", nil
	}
	return "Course is Unpublished", nil
}

func (uc *CourseUsecase) withCreators(ctx context.Context, courses []*entity.Course) []*usecasecontract.CourseWithCreator {
	result := []*usecasecontract.CourseWithCreator{}
	for _, course := range courses {
		result = append(result, &usecasecontract.CourseWithCreator{
			Course:      course,
			CreatorInfo: resolveCreator(ctx, uc.userRepo, uc.logger, course.Creator),
		})
	}
	return result
}

func (uc *CourseUsecase) invalidatePublishedCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidatePublishedCourses(ctx); err != nil {
		uc.logger.Warnf("published-course cache invalidation failed: %v", err)
	}
}
