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

const resetTokenByteLength = 32

// UserUsecase implements the user-facing account operations.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	courseRepo      contract.ICourseRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	tokenService    TokenService
	mediaService    contract.IMediaService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	idGenerator     contract.IIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	courseRepo contract.ICourseRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	mediaService contract.IMediaService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	idGenerator contract.IIDGenerator,
	randomGenerator contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		tokenService:    tokenService,
		mediaService:    mediaService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		idGenerator:     idGenerator,
		randomGenerator: randomGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password string, role entity.UserRole) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperr.ErrValidation)
	}
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, role)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", apperr.ErrValidation)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", apperr.ErrConflict)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user: %v", err)
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, errors.New("failed to process password")
	}

	user := &entity.User{
		ID:              uc.idGenerator.NewID(),
		Name:            name,
		Email:           email,
		Password:        hashedPassword,
		Role:            role,
		EnrolledCourses: []string{},
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: user with this email already exists", apperr.ErrConflict)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}
	return user, nil
}

// Login verifies email, password and role. The three failure modes share one
// error so the response never tells an attacker which check failed.
func (uc *UserUsecase) Login(ctx context.Context, email, password string, role entity.UserRole) (*entity.User, string, error) {
	if email == "" || password == "" || role == "" {
		return nil, "", fmt.Errorf("%w: email, password and role are required", apperr.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}
	if err := uc.hasher.ComparePasswordHash(password, user.Password); err != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}
	if user.Role != role {
		uc.logger.Warnf("login role mismatch for user %s: requested %q", user.ID, role)
		return nil, "", apperr.ErrInvalidCredentials
	}

	token, err := uc.tokenService.GenerateSessionToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for user %s: %v", user.ID, err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, token, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if !uuidgen.IsValidID(userID) {
		return nil, apperr.ErrInvalidID
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}

// GetProfile returns the user with their enrolled courses expanded. Courses
// that disappeared since enrollment are skipped rather than failing the
// whole profile.
func (uc *UserUsecase) GetProfile(ctx context.Context, userID string) (*usecasecontract.Profile, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	enrolled := []*usecasecontract.CourseWithCreator{}
	for _, courseID := range user.EnrolledCourses {
		course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				continue
			}
			return nil, err
		}
		enrolled = append(enrolled, &usecasecontract.CourseWithCreator{
			Course:      course,
			CreatorInfo: resolveCreator(ctx, uc.userRepo, uc.logger, course.Creator),
		})
	}
	return &usecasecontract.Profile{User: user, EnrolledCourses: enrolled}, nil
}

// UpdateProfile updates the display name and/or profile photo. A replaced
// photo's old asset is destroyed best effort.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID, name, photoPath string) (*entity.User, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if photoPath != "" {
		result, err := uc.mediaService.Upload(ctx, photoPath)
		if err != nil {
			uc.logger.Errorf("failed to upload profile photo for user %s: %v", userID, err)
			return nil, err
		}
		if user.PhotoURL != nil && *user.PhotoURL != "" {
			oldID := uc.mediaService.PublicIDFromURL(*user.PhotoURL)
			if err := uc.mediaService.Destroy(ctx, oldID); err != nil {
				uc.logger.Warnf("failed to destroy old profile photo %s: %v", oldID, err)
			}
		}
		user.PhotoURL = &result.URL
	}
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = time.Now()

	return uc.userRepo.UpdateUser(ctx, user)
}

// ForgotPassword emails a one-time reset token. The response is identical
// whether or not the email is registered.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: invalid email format", apperr.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			uc.logger.Infof("password reset requested for unknown email")
			return nil
		}
		return err
	}

	plainToken, err := uc.randomGenerator.GenerateRandomToken(resetTokenByteLength)
	if err != nil {
		uc.logger.Errorf("failed to generate reset token: %v", err)
		return errors.New("failed to generate reset token")
	}
	tokenHash, err := uc.hasher.HashToken(plainToken)
	if err != nil {
		uc.logger.Errorf("failed to hash reset token: %v", err)
		return errors.New("failed to process reset token")
	}

	tokenEntity := &entity.Token{
		ID:        uc.idGenerator.NewID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(uc.config.GetPasswordResetTokenExpiry()),
		CreatedAt: time.Now(),
		Revoked:   false,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store reset token for user %s: %v", user.ID, err)
		return errors.New("failed to store reset token")
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nUse the token below to reset your password. It expires in %d minutes.\n\nReset token: %s\n\nIf you did not request this, you can ignore this email.",
		user.Name,
		int(uc.config.GetPasswordResetTokenExpiry().Minutes()),
		plainToken,
	)
	if err := uc.mailService.SendEmail(ctx, user.Email, "Reset your password", body); err != nil {
		uc.logger.Errorf("failed to send reset email to user %s: %v", user.ID, err)
		return errors.New("failed to send reset email")
	}
	return nil
}

// ResetPassword replaces the password after verifying the emailed one-time
// token. The token is revoked on success.
func (uc *UserUsecase) ResetPassword(ctx context.Context, userID, newPassword, resetToken string) error {
	if !uuidgen.IsValidID(userID) {
		return apperr.ErrInvalidID
	}
	if resetToken == "" {
		return fmt.Errorf("%w: reset token is required", apperr.ErrValidation)
	}
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	stored, err := uc.tokenRepo.GetActiveTokenByUserID(ctx, userID, entity.TokenTypePasswordReset)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrResetToken
		}
		return err
	}
	if err := uc.hasher.CompareTokenHash(resetToken, stored.TokenHash); err != nil {
		return apperr.ErrResetToken
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return errors.New("failed to process password")
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, userID, hashedPassword); err != nil {
		return err
	}
	if err := uc.tokenRepo.RevokeToken(ctx, stored.ID); err != nil {
		uc.logger.Warnf("failed to revoke reset token %s: %v", stored.ID, err)
	}
	return nil
}
