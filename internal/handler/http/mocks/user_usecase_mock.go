package mocks

import (
	"context"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/entity"
	usecasecontract "coursehub/internal/usecase/contract"
)

// MockUserUsecase is a flag-driven mock of the user usecase.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	RegisterConflict         bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailGetProfile     bool
	ShouldFailUpdateProfile  bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ResetPasswordNotFound    bool

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockUserUsecase satisfies the handler's dependency.
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:              "a2e9f3a8-0c3b-4f97-9f25-5b6f2a9d1e10",
			Name:            "Test User",
			Email:           "test@example.com",
			Role:            entity.UserRoleStudent,
			EnrolledCourses: []string{},
		},
		MockToken: "mock_session_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	if m.RegisterConflict {
		return nil, apperr.ErrConflict
	}
	if m.ShouldFailRegister {
		return nil, apperr.ErrValidation
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", apperr.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperr.ErrNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID string) (*usecasecontract.Profile, error) {
	if m.ShouldFailGetProfile {
		return nil, apperr.ErrNotFound
	}
	return &usecasecontract.Profile{
		User:            &m.MockUser,
		EnrolledCourses: []*usecasecontract.CourseWithCreator{},
	}, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID, name, photoPath string) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, apperr.ErrNotFound
	}
	updated := m.MockUser
	if name != "" {
		updated.Name = name
	}
	return &updated, nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return apperr.ErrValidation
	}
	return nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, userID, newPassword, resetToken string) error {
	if m.ResetPasswordNotFound {
		return apperr.ErrNotFound
	}
	if m.ShouldFailResetPassword {
		return apperr.ErrResetToken
	}
	return nil
}
