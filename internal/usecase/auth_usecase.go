// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// VerifyEmailInput carries the 6-digit code from the verification email.
type VerifyEmailInput struct {
	Code string `json:"code" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput carries the email a reset link should go to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries the reset token from the emailed link and the
// replacement password.
type ResetPasswordInput struct {
	Token    string `json:"-"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput returns the account together with a freshly issued session
// token. The delivery layer turns the token into the session cookie.
type SessionOutput struct {
	SessionToken string
	User         *entity.User
}

// AuthUsecase defines the account state machine: the contract the delivery
// layer depends on for every authentication operation.
type AuthUsecase interface {
	// Register creates an unverified account, issues a session token and
	// dispatches the verification email.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// VerifyEmail redeems a verification code, marking the account verified.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) (*entity.User, error)

	// Login checks credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// CheckAuth loads the account behind an already-validated session.
	CheckAuth(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ForgotPassword issues a reset token and emails the reset link.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword redeems a reset token and replaces the credential hash.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
