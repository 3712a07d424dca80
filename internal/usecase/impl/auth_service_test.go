package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testClientBaseURL = "https://app.example.com"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	codeGenerator *mockSvc.MockCodeGenerator
	notifier      *mockSvc.MockNotifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	codeGenerator := mockSvc.NewMockCodeGenerator(t)
	notifier := mockSvc.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:      userRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		CodeGenerator: codeGenerator,
		Notifier:      notifier,
		Config:        &config.Config{Client: &config.ClientConfig{BaseURL: testClientBaseURL}},
		Logger:        logger,
	})

	return authServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		codeGenerator: codeGenerator,
		notifier:      notifier,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		Name:     "New User",
	}
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.codeGenerator.EXPECT().GenerateEmailCode().Return("123456", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate(userID).Return("session-token", nil)
	fx.notifier.EXPECT().SendVerificationEmail(ctx, input.Email, "123456").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.False(t, output.User.IsVerified)

	require.NotNil(t, output.User.VerificationCode)
	assert.Equal(t, "123456", *output.User.VerificationCode)
	require.NotNil(t, output.User.VerificationCodeExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *output.User.VerificationCodeExpiresAt, time.Minute)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	code := "654321"
	expiry := time.Now().Add(time.Hour)
	user := &entity.User{
		ID:                        uuid.New(),
		Email:                     "pending@example.com",
		Name:                      "Pending User",
		VerificationCode:          &code,
		VerificationCodeExpiresAt: &expiry,
	}

	fx.userRepo.EXPECT().FindByVerificationCode(ctx, code).Return(user, nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, saved *entity.User) {
			assert.True(t, saved.IsVerified)
			assert.Nil(t, saved.VerificationCode)
			assert.Nil(t, saved.VerificationCodeExpiresAt)
		}).
		Return(nil)
	fx.notifier.EXPECT().SendWelcomeEmail(ctx, user.Email, user.Name).Return(nil)

	verified, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Code: code})

	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationCode)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().Generate(user.ID).Return("session-token", nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, saved *entity.User) {
			require.NotNil(t, saved.LastLoginAt)
			assert.WithinDuration(t, time.Now(), *saved.LastLoginAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnverifiedAccountStillLogsIn(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "unverified@example.com",
		PasswordHash: "stored_hash",
		IsVerified:   false,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().Generate(user.ID).Return("session-token", nil)
	fx.userRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.False(t, output.User.IsVerified)
}

func TestAuthService_CheckAuth_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "known@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.CheckAuth(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "known@example.com"}
	resetToken := "a1b2c3d4e5f60718293a4b5c6d7e8f9001122334"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codeGenerator.EXPECT().GenerateResetToken().Return(resetToken, nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, saved *entity.User) {
			require.NotNil(t, saved.ResetToken)
			assert.Equal(t, resetToken, *saved.ResetToken)
			require.NotNil(t, saved.ResetTokenExpiresAt)
			assert.WithinDuration(t, time.Now().Add(time.Hour), *saved.ResetTokenExpiresAt, time.Minute)
		}).
		Return(nil)
	fx.notifier.EXPECT().
		SendPasswordResetEmail(ctx, user.Email, testClientBaseURL+"/reset-password/"+resetToken).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: user.Email})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	resetToken := "a1b2c3d4e5f60718293a4b5c6d7e8f9001122334"
	expiry := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		ID:                  uuid.New(),
		Email:               "known@example.com",
		PasswordHash:        "old_hash",
		ResetToken:          &resetToken,
		ResetTokenExpiresAt: &expiry,
	}

	fx.userRepo.EXPECT().FindByResetToken(ctx, resetToken).Return(user, nil)
	fx.hasher.EXPECT().Hash("NewPassword456!").Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, saved *entity.User) {
			assert.Equal(t, "new_hash", saved.PasswordHash)
			assert.Nil(t, saved.ResetToken)
			assert.Nil(t, saved.ResetTokenExpiresAt)
		}).
		Return(nil)
	fx.notifier.EXPECT().SendResetSuccessEmail(ctx, user.Email).Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: resetToken, Password: "NewPassword456!"})

	require.NoError(t, err)
}
