// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the central account record. It carries the login credential hash
// together with the verification and password-reset state the protocol
// transitions through.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The account's login identifier; unique across the store.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt-hashed password. Never serialized toward clients.

	// IsVerified flips to true exactly once, when the email verification
	// code is redeemed. It never reverts through this protocol.
	IsVerified bool

	// VerificationCode and VerificationCodeExpiresAt are set together when a
	// verification email goes out and cleared together when the code is
	// redeemed. At most one code is active; re-issuing overwrites.
	VerificationCode          *string
	VerificationCodeExpiresAt *time.Time

	// ResetToken and ResetTokenExpiresAt follow the same pairing rule for
	// the password-reset flow.
	ResetToken          *string
	ResetTokenExpiresAt *time.Time

	LastLoginAt *time.Time // Updated on every successful login.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetVerificationCode installs a fresh verification code, replacing any
// previous one.
func (u *User) SetVerificationCode(code string, expiresAt time.Time) {
	u.VerificationCode = &code
	u.VerificationCodeExpiresAt = &expiresAt
}

// ClearVerificationCode removes the active code and its expiry as a pair.
func (u *User) ClearVerificationCode() {
	u.VerificationCode = nil
	u.VerificationCodeExpiresAt = nil
}

// SetResetToken installs a fresh reset token, replacing any previous one.
func (u *User) SetResetToken(token string, expiresAt time.Time) {
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &expiresAt
}

// ClearResetToken removes the active reset token and its expiry as a pair.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
}
