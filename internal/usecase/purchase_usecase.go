package usecase

import (
	"context"
	"errors"
	"fmt"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
	"coursehub/internal/infrastructure/metrics"
	"coursehub/internal/infrastructure/uuidgen"
	usecasecontract "coursehub/internal/usecase/contract"
)

// PurchaseUsecase implements checkout, webhook handling and purchase views.
type PurchaseUsecase struct {
	purchaseRepo contract.IPurchaseRepository
	courseRepo   contract.ICourseRepository
	userRepo     contract.IUserRepository
	lectureRepo  contract.ILectureRepository
	gateway      contract.IPaymentGateway
	logger       usecasecontract.IAppLogger
	idGenerator  contract.IIDGenerator
	cache        usecasecontract.ICourseCache
}

// NewPurchaseUsecase creates a new PurchaseUsecase instance.
func NewPurchaseUsecase(
	purchaseRepo contract.IPurchaseRepository,
	courseRepo contract.ICourseRepository,
	userRepo contract.IUserRepository,
	lectureRepo contract.ILectureRepository,
	gateway contract.IPaymentGateway,
	logger usecasecontract.IAppLogger,
	idGenerator contract.IIDGenerator,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		purchaseRepo: purchaseRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		lectureRepo:  lectureRepo,
		gateway:      gateway,
		logger:       logger,
		idGenerator:  idGenerator,
	}
}

// check if PurchaseUsecase implements the IPurchaseUseCase
var _ usecasecontract.IPurchaseUseCase = (*PurchaseUsecase)(nil)

// SetCourseCache attaches the optional published-course cache so completed
// purchases can invalidate the cached enrollment counts.
func (uc *PurchaseUsecase) SetCourseCache(cache usecasecontract.ICourseCache) {
	uc.cache = cache
}

// CreateCheckoutSession opens a gateway checkout session and persists the
// pending purchase with the session id in a single insert. The existing-
// purchase pre-check is a fast path only; the unique index in the purchase
// store holds under concurrent checkouts. Persisting after the gateway call
// means a gateway failure leaves nothing behind, so the user can retry.
func (uc *PurchaseUsecase) CreateCheckoutSession(ctx context.Context, userID, courseID string) (string, error) {
	if !uuidgen.IsValidID(userID) || !uuidgen.IsValidID(courseID) {
		return "", apperr.ErrInvalidID
	}
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	if _, err := uc.purchaseRepo.GetActivePurchase(ctx, userID, courseID); err == nil {
		return "", fmt.Errorf("%w: an active purchase already exists for this course", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, &contract.CheckoutInput{
		UserID:       userID,
		CourseID:     courseID,
		CourseTitle:  course.CourseTitle,
		ThumbnailURL: course.CourseThumbnail,
		Price:        course.Price(),
	})
	if err != nil {
		uc.logger.Errorf("failed to create checkout session for course %s: %v", courseID, err)
		return "", err
	}

	purchase := &entity.Purchase{
		ID:        uc.idGenerator.NewID(),
		CourseID:  courseID,
		UserID:    userID,
		Amount:    course.Price(),
		Status:    entity.PurchaseStatusPending,
		PaymentID: session.ID,
	}
	if err := uc.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", fmt.Errorf("%w: an active purchase already exists for this course", apperr.ErrConflict)
		}
		uc.logger.Errorf("failed to create purchase: %v", err)
		return "", err
	}

	metrics.CheckoutSessionsCreated.Inc()
	return session.URL, nil
}

// HandleWebhookEvent verifies and applies a gateway notification. After the
// signature passes, everything is acknowledged: replays and unknown
// sessions are no-ops, not errors.
func (uc *PurchaseUsecase) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := uc.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return err
	}
	if event.Type != contract.EventCheckoutCompleted {
		uc.logger.Debugf("ignoring webhook event type %s", event.Type)
		return nil
	}

	amount := float64(event.AmountTotal) / 100
	purchase, err := uc.purchaseRepo.CompleteByPaymentID(ctx, event.SessionID, amount)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			uc.logger.Infof("webhook for session %s matched no pending purchase", event.SessionID)
			return nil
		}
		uc.logger.Errorf("failed to complete purchase for session %s: %v", event.SessionID, err)
		return err
	}

	if err := uc.userRepo.AddEnrolledCourse(ctx, purchase.UserID, purchase.CourseID); err != nil {
		uc.logger.Errorf("failed to enroll user %s in course %s: %v", purchase.UserID, purchase.CourseID, err)
		return err
	}
	if err := uc.courseRepo.AddEnrolledStudent(ctx, purchase.CourseID, purchase.UserID); err != nil {
		uc.logger.Errorf("failed to add student %s to course %s: %v", purchase.UserID, purchase.CourseID, err)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidatePublishedCourses(ctx); err != nil {
			uc.logger.Warnf("published-course cache invalidation failed: %v", err)
		}
	}

	metrics.PurchasesCompleted.Inc()
	uc.logger.Infof("purchase %s completed for user %s", purchase.ID, purchase.UserID)
	return nil
}

// GetCourseDetailWithStatus returns the expanded course view plus whether
// the user holds a completed purchase for it.
func (uc *PurchaseUsecase) GetCourseDetailWithStatus(ctx context.Context, userID, courseID string) (*usecasecontract.CourseDetail, bool, error) {
	if !uuidgen.IsValidID(userID) || !uuidgen.IsValidID(courseID) {
		return nil, false, apperr.ErrInvalidID
	}
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	lectures, err := uc.lectureRepo.GetLecturesByIDs(ctx, course.Lectures)
	if err != nil {
		return nil, false, err
	}
	detail := &usecasecontract.CourseDetail{
		Course:      course,
		CreatorInfo: resolveCreator(ctx, uc.userRepo, uc.logger, course.Creator),
		LectureList: lectures,
	}

	purchased := true
	if _, err := uc.purchaseRepo.GetCompletedPurchase(ctx, userID, courseID); err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, false, err
		}
		purchased = false
	}
	return detail, purchased, nil
}

// GetAllPurchasedCourses lists completed purchases with courses expanded.
// Purchases whose course has since vanished keep the purchase record with a
// nil course.
func (uc *PurchaseUsecase) GetAllPurchasedCourses(ctx context.Context) ([]*usecasecontract.PurchaseWithCourse, error) {
	purchases, err := uc.purchaseRepo.GetCompletedPurchases(ctx)
	if err != nil {
		return nil, err
	}

	result := []*usecasecontract.PurchaseWithCourse{}
	for _, purchase := range purchases {
		course, err := uc.courseRepo.GetCourseByID(ctx, purchase.CourseID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		result = append(result, &usecasecontract.PurchaseWithCourse{
			Purchase: purchase,
			Course:   course,
		})
	}
	return result, nil
}
