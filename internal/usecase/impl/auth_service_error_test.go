package impl

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, existing.Email).Return(existing, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    existing.Email,
		Password: "Password123!",
		Name:     "Someone",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	assert.Nil(t, output)
}

func TestAuthService_Register_NotifierFailureAfterCommit(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Name:     "New User",
	}
	created := false

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.codeGenerator.EXPECT().GenerateEmailCode().Return("123456", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
			created = true
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(mock.AnythingOfType("uuid.UUID")).Return("session-token", nil)
	fx.notifier.EXPECT().
		SendVerificationEmail(ctx, input.Email, "123456").
		Return(errors.New("smtp unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	assert.Nil(t, output)
	// The account row was written before the send was attempted.
	assert.True(t, created)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Name:     "New User",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_VerifyEmail_UnknownCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByVerificationCode(ctx, "000000").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Code: "000000"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVerificationCode))
}

func TestAuthService_VerifyEmail_ExpiredCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	code := "123456"
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{
		ID:                        uuid.New(),
		Email:                     "stale@example.com",
		VerificationCode:          &code,
		VerificationCodeExpiresAt: &expiry,
	}

	fx.userRepo.EXPECT().FindByVerificationCode(ctx, code).Return(user, nil)

	_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Code: code})

	// An expired code answers exactly like an unknown one.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidVerificationCode))
	assert.False(t, user.IsVerified)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "whatever",
	})

	user := &entity.User{ID: uuid.New(), Email: "known@example.com", PasswordHash: "stored_hash"}
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_CheckAuth_NoBackingRecord(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CheckAuth(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "unknown@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByResetToken(ctx, "deadbeef").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "deadbeef", Password: "NewPassword456!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	resetToken := "a1b2c3d4e5f60718293a4b5c6d7e8f9001122334"
	expiry := time.Now().Add(-time.Minute)
	user := &entity.User{
		ID:                  uuid.New(),
		Email:               "stale@example.com",
		PasswordHash:        "old_hash",
		ResetToken:          &resetToken,
		ResetTokenExpiresAt: &expiry,
	}

	fx.userRepo.EXPECT().FindByResetToken(ctx, resetToken).Return(user, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: resetToken, Password: "NewPassword456!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
	// The stored credential is untouched on a failed redemption.
	assert.Equal(t, "old_hash", user.PasswordHash)
}
