// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"gatekeeper/internal/domain/service"
)

const (
	// emailCodeDigits is the width of the numeric verification code.
	emailCodeDigits = 6

	// resetTokenBytes is how many random bytes back a reset token (hex-encoded on the wire).
	resetTokenBytes = 20
)

// codeGenerator produces the protocol's single-use secrets from crypto/rand.
type codeGenerator struct{}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// GenerateEmailCode returns a uniformly random 6-digit numeric string,
// zero-padded so every code has the same width.
func (g *codeGenerator) GenerateEmailCode() (string, error) {
	max := big.NewInt(1)
	for range emailCodeDigits {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random verification code")
	}

	return fmt.Sprintf("%0*d", emailCodeDigits, n), nil
}

// GenerateResetToken returns 20 random bytes hex-encoded.
func (g *codeGenerator) GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to draw random reset token")
	}

	return hex.EncodeToString(buf), nil
}
