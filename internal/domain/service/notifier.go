package service

import (
	"context"
)

// Notifier defines the interface for the outbound email messages the
// protocol dispatches after each committed state change.
type Notifier interface {
	// SendVerificationEmail delivers the 6-digit verification code.
	SendVerificationEmail(ctx context.Context, email, code string) error

	// SendWelcomeEmail greets the account after successful verification.
	SendWelcomeEmail(ctx context.Context, email, name string) error

	// SendPasswordResetEmail delivers the reset link embedding the token.
	SendPasswordResetEmail(ctx context.Context, email, resetURL string) error

	// SendResetSuccessEmail confirms a completed password reset.
	SendResetSuccessEmail(ctx context.Context, email string) error
}
