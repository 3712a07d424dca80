// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Code and token lookups match on the stored string only; expiry is the
// caller's concern, checked at the moment of use.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByVerificationCode retrieves the account holding the given active
	// verification code.
	FindByVerificationCode(ctx context.Context, code string) (*entity.User, error)

	// FindByResetToken retrieves the account holding the given active
	// password-reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new account to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Save writes the full account state back, including cleared
	// verification/reset pairs.
	Save(ctx context.Context, user *entity.User) error
}
