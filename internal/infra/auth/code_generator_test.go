package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_GenerateEmailCode(t *testing.T) {
	t.Parallel()

	gen := NewCodeGenerator()
	pattern := regexp.MustCompile(`^\d{6}$`)

	for range 50 {
		code, err := gen.GenerateEmailCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestCodeGenerator_GenerateResetToken(t *testing.T) {
	t.Parallel()

	gen := NewCodeGenerator()

	token, err := gen.GenerateResetToken()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{40}$`, token)

	other, err := gen.GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
