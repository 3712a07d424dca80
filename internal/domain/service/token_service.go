package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token embedding the account ID.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded account ID.
	Validate(tokenString string) (uuid.UUID, error)

	// SessionDuration returns the configured token lifetime, used to align
	// the cookie max-age with the token expiry.
	SessionDuration() time.Duration
}
