package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test-secret")
	userID := uuid.New()

	token, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_Validate_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestJWTService(t, "secret-a")
	verifier := newTestJWTService(t, "secret-b")

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Validate_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test-secret")

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Validate_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test-secret")

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTService_Validate_RejectsNonUUIDSubject(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test-secret")

	claims := jwt.MapClaims{
		"sub": "not-a-uuid",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_SessionDuration(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test-secret")
	assert.Equal(t, 7*24*time.Hour, svc.SessionDuration())
}
