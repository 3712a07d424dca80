// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// verificationCodeTTL is how long an emailed verification code stays redeemable.
	verificationCodeTTL = 24 * time.Hour

	// resetTokenTTL is how long a password-reset token stays redeemable.
	resetTokenTTL = time.Hour
)

// authService implements the AuthUsecase interface. It is the account state
// machine: every operation validates preconditions against the record store,
// drives the hasher/token/code services, persists the state change and only
// then dispatches the notification. A notifier failure still fails the
// request (matching the upstream behavior this service replicates), but the
// committed state stands.
type authService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	codeGenerator service.CodeGenerator
	notifier      service.Notifier
	clientBaseURL string
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	CodeGenerator service.CodeGenerator
	Notifier      service.Notifier
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	clientBaseURL := ""
	if params.Config != nil && params.Config.Client != nil {
		clientBaseURL = params.Config.Client.BaseURL
	}

	return &authService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		codeGenerator: params.CodeGenerator,
		notifier:      params.Notifier,
		clientBaseURL: clientBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified account and immediately issues a session
// token for it, so a freshly signed-up user is logged in before completing
// email verification. That is a deliberate policy carried over from the
// system this replaces.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	code, err := srv.codeGenerator.GenerateEmailCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}
	newUser.SetVerificationCode(code, time.Now().Add(verificationCodeTTL))

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	sessionToken, err := srv.tokenService.Generate(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token during registration")
	}

	// Account state is committed; the verification email goes out last so a
	// delivery failure can never leave a half-created account.
	if err := srv.notifier.SendVerificationEmail(ctx, newUser.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNotificationFailed, "failed to send verification email")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.SessionOutput{SessionToken: sessionToken, User: newUser}, nil
}

// VerifyEmail redeems a verification code. Unknown and expired codes are
// indistinguishable to the caller, and a redeemed code cannot be replayed
// because the pair is cleared in the same save that flips IsVerified.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) (*entity.User, error) {
	srv.log(ctx).Debug("Verifying email")

	user, err := srv.userRepo.FindByVerificationCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidVerificationCode, "no account matches verification code")
		}

		return nil, errors.Wrap(err, "failed to look up verification code")
	}

	// Expiry is checked at the moment of use; stale codes are never purged eagerly.
	if user.VerificationCodeExpiresAt == nil || time.Now().After(*user.VerificationCodeExpiresAt) {
		srv.log(ctx).Warn("Verification code expired", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidVerificationCode, "verification code expired")
	}

	user.IsVerified = true
	user.ClearVerificationCode()

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist verified account")
	}

	if err := srv.notifier.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNotificationFailed, "failed to send welcome email")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return user, nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password produce the same error value so the response cannot be
// used to enumerate accounts. Verification is not a login precondition.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	sessionToken, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token during login")
	}

	now := time.Now()
	user.LastLoginAt = &now

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{SessionToken: sessionToken, User: user}, nil
}

// CheckAuth loads the account behind a validated session. The delivery
// layer has already verified the token; a missing record here means the
// identity no longer has a backing account.
func (srv *authService) CheckAuth(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authenticated identity has no backing record", slog.Any("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no account for session identity")
		}

		return nil, errors.Wrap(err, "failed to load account for session")
	}

	return user, nil
}

// ForgotPassword stores a fresh reset token, replacing any previous one
// (last write wins on concurrent requests), and emails the reset link.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Debug("Starting password reset request", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for password reset")
		}

		return errors.Wrap(err, "failed to load account for password reset")
	}

	resetToken, err := srv.codeGenerator.GenerateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	user.SetResetToken(resetToken, time.Now().Add(resetTokenTTL))

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	resetURL := srv.clientBaseURL + "/reset-password/" + resetToken
	if err := srv.notifier.SendPasswordResetEmail(ctx, user.Email, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.String("email", user.Email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrNotificationFailed, "failed to send password reset email")
	}

	srv.log(ctx).Info("Password reset email dispatched", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword redeems a reset token and replaces the credential hash.
// The token pair is cleared in the same save as the hash overwrite, so a
// redeemed token finds no matching record on replay.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Debug("Resetting password")

	user, err := srv.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidResetToken, "no account matches reset token")
		}

		return errors.Wrap(err, "failed to look up reset token")
	}

	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		srv.log(ctx).Warn("Reset token expired", slog.Any("userID", user.ID))

		return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token expired")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during reset")
	}

	user.PasswordHash = hashedPassword
	user.ClearResetToken()

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new credential")
	}

	if err := srv.notifier.SendResetSuccessEmail(ctx, user.Email); err != nil {
		srv.log(ctx).Error("Failed to send reset confirmation email", slog.String("email", user.Email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrNotificationFailed, "failed to send reset confirmation email")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}
