package mocks

import (
	"context"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/entity"
	usecasecontract "coursehub/internal/usecase/contract"
)

// MockPurchaseUsecase is a flag-driven mock of the purchase usecase.
type MockPurchaseUsecase struct {
	CheckoutConflict    bool
	ShouldFailCheckout  bool
	WebhookSignatureBad bool
	ShouldFailWebhook   bool
	ShouldFailDetail    bool
	ShouldFailList      bool

	MockURL       string
	MockPurchased bool
	MockDetail    *usecasecontract.CourseDetail
}

var _ usecasecontract.IPurchaseUseCase = (*MockPurchaseUsecase)(nil)

func NewMockPurchaseUsecase() *MockPurchaseUsecase {
	return &MockPurchaseUsecase{
		MockURL: "https://checkout.example.com/session/cs_test_123",
		MockDetail: &usecasecontract.CourseDetail{
			Course: &entity.Course{
				ID:          "7f0d7e62-98a1-4a52-b6ad-3f36e3a2f0cd",
				CourseTitle: "Test Course",
			},
			LectureList: []*entity.Lecture{},
		},
	}
}

func (m *MockPurchaseUsecase) CreateCheckoutSession(ctx context.Context, userID, courseID string) (string, error) {
	if m.CheckoutConflict {
		return "", apperr.ErrConflict
	}
	if m.ShouldFailCheckout {
		return "", apperr.ErrGateway
	}
	return m.MockURL, nil
}

func (m *MockPurchaseUsecase) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	if m.WebhookSignatureBad {
		return apperr.ErrSignature
	}
	if m.ShouldFailWebhook {
		return apperr.ErrNotFound
	}
	return nil
}

func (m *MockPurchaseUsecase) GetCourseDetailWithStatus(ctx context.Context, userID, courseID string) (*usecasecontract.CourseDetail, bool, error) {
	if m.ShouldFailDetail {
		return nil, false, apperr.ErrNotFound
	}
	return m.MockDetail, m.MockPurchased, nil
}

func (m *MockPurchaseUsecase) GetAllPurchasedCourses(ctx context.Context) ([]*usecasecontract.PurchaseWithCourse, error) {
	if m.ShouldFailList {
		return nil, apperr.ErrNotFound
	}
	return []*usecasecontract.PurchaseWithCourse{}, nil
}
