package service

// CodeGenerator defines the interface for producing the short-lived,
// single-use secrets of the verification and reset flows.
type CodeGenerator interface {
	// GenerateEmailCode returns a uniformly random 6-digit numeric string.
	GenerateEmailCode() (string, error)

	// GenerateResetToken returns a high-entropy hex string (20 random bytes).
	GenerateResetToken() (string, error)
}
