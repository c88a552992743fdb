package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/entity"
	"coursehub/internal/usecase"
)

func newUserUsecase(t *testing.T) (*usecase.UserUsecase, *fakeUserRepo, *fakeTokenRepo, *fakeMail) {
	t.Helper()
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	tokenRepo := newFakeTokenRepo()
	mail := &fakeMail{}
	uc := usecase.NewUserUsecase(
		userRepo, courseRepo, tokenRepo, fakeHasher{}, fakeTokenService{}, &fakeMedia{},
		mail, fakeLogger{}, fakeConfig{}, fakeValidator{}, fakeIDGen{}, fakeRandom{token: "plain-reset-token"},
	)
	return uc, userRepo, tokenRepo, mail
}

func registerUser(t *testing.T, uc *usecase.UserUsecase, email string, role entity.UserRole) *entity.User {
	t.Helper()
	user, err := uc.Register(context.Background(), "Abel Tesfaye", email, "secret1", role)
	require.NoError(t, err)
	return user
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)
	registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)

	_, err := uc.Register(context.Background(), "Someone Else", "abel@example.com", "secret2", entity.UserRoleInstructor)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegister_Validation(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "", "abel@example.com", "secret1", entity.UserRoleStudent)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.Register(ctx, "Abel", "not-an-email", "secret1", entity.UserRoleStudent)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.Register(ctx, "Abel", "abel@example.com", "tiny", entity.UserRoleStudent)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.Register(ctx, "Abel", "abel@example.com", "secret1", entity.UserRole("admin"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegister_HashesPassword(t *testing.T) {
	uc, userRepo, _, _ := newUserUsecase(t)
	user := registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)

	stored := userRepo.users[user.ID]
	assert.Equal(t, "hashed:secret1", stored.Password)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)
	registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)
	ctx := context.Background()

	// unknown email, wrong password and role mismatch must be
	// indistinguishable to the caller
	_, _, errUnknown := uc.Login(ctx, "ghost@example.com", "secret1", entity.UserRoleStudent)
	_, _, errPassword := uc.Login(ctx, "abel@example.com", "wrong-password", entity.UserRoleStudent)
	_, _, errRole := uc.Login(ctx, "abel@example.com", "secret1", entity.UserRoleInstructor)

	assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, errPassword, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, errRole, apperr.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errPassword.Error())
	assert.Equal(t, errPassword.Error(), errRole.Error())
}

func TestLogin_Success(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)
	created := registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)

	user, token, err := uc.Login(context.Background(), "abel@example.com", "secret1", entity.UserRoleStudent)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "session-"+created.ID, token)
}

func TestForgotPassword_UnknownEmailStaysSilent(t *testing.T) {
	uc, _, _, mail := newUserUsecase(t)

	err := uc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestResetPassword_WithEmailedToken(t *testing.T) {
	uc, userRepo, _, mail := newUserUsecase(t)
	user := registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, "abel@example.com"))
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].Body, "plain-reset-token")

	err := uc.ResetPassword(ctx, user.ID, "brand-new-pass", "plain-reset-token")
	require.NoError(t, err)
	assert.Equal(t, "hashed:brand-new-pass", userRepo.users[user.ID].Password)

	// the token is single use
	err = uc.ResetPassword(ctx, user.ID, "another-pass", "plain-reset-token")
	assert.ErrorIs(t, err, apperr.ErrResetToken)
}

func TestResetPassword_WrongToken(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)
	user := registerUser(t, uc, "abel@example.com", entity.UserRoleStudent)
	ctx := context.Background()

	require.NoError(t, uc.ForgotPassword(ctx, "abel@example.com"))

	err := uc.ResetPassword(ctx, user.ID, "brand-new-pass", "guessed-token")
	assert.ErrorIs(t, err, apperr.ErrResetToken)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	uc, _, _, _ := newUserUsecase(t)

	err := uc.ResetPassword(context.Background(), uuid.New().String(), "brand-new-pass", "some-token")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateProfile_ReplacesPhotoAndDestroysOld(t *testing.T) {
	userRepo := newFakeUserRepo()
	media := &fakeMedia{}
	uc := usecase.NewUserUsecase(
		userRepo, newFakeCourseRepo(), newFakeTokenRepo(), fakeHasher{}, fakeTokenService{}, media,
		&fakeMail{}, fakeLogger{}, fakeConfig{}, fakeValidator{}, fakeIDGen{}, fakeRandom{},
	)
	ctx := context.Background()

	user, err := uc.Register(ctx, "Abel", "abel@example.com", "secret1", entity.UserRoleStudent)
	require.NoError(t, err)

	old := "https://cdn.example.com/assets/old-photo.jpg"
	userRepo.users[user.ID].PhotoURL = &old

	updated, err := uc.UpdateProfile(ctx, user.ID, "New Name", "/tmp/new-photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	require.NotNil(t, updated.PhotoURL)
	assert.NotEqual(t, old, *updated.PhotoURL)
	assert.Equal(t, []string{"old-photo"}, media.destroyed)
}
