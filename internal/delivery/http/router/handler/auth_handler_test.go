package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/delivery/http/validator"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	mockSvc "gatekeeper/internal/mocks/service"
	mockUc "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "token"

type handlerFixtures struct {
	server   *echo.Echo
	uc       *mockUc.MockAuthUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestServer(t *testing.T) handlerFixtures {
	uc := mockUc.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Cookie: &config.CookieConfig{Name: testCookieName}}

	h := NewAuthHandler(AuthHandlerParams{
		Usecase:      uc,
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	authMw := middleware.NewAuthMiddleware(tokenSvc, cfg)
	errMw := middleware.NewErrorMiddleware(logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = errMw.HandleHTTPError

	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/verify-email", h.VerifyEmail)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/logout", h.Logout)
	e.POST("/api/auth/forgot-password", h.ForgotPassword)
	e.POST("/api/auth/reset-password/:token", h.ResetPassword)
	e.GET("/api/auth/check-auth", h.CheckAuth, authMw.Authenticate)

	return handlerFixtures{server: e, uc: uc, tokenSvc: tokenSvc}
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "new@example.com", Name: "New User"}
	fx.uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Email:    "new@example.com",
			Password: "Password123!",
			Name:     "New User",
		}).
		Return(&usecase.SessionOutput{SessionToken: "session-token", User: user}, nil)
	fx.tokenSvc.EXPECT().SessionDuration().Return(7 * 24 * time.Hour)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/signup",
		`{"email":"new@example.com","password":"Password123!","name":"New User"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.User)
	assert.Equal(t, "new@example.com", envelope.User.Email)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/signup", `{"email":"new@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "All fields are required", envelope.Message)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_INPUT", envelope.Error.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed"))

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/signup",
		`{"email":"taken@example.com","password":"Password123!","name":"Someone"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "User already exists", envelope.Message)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_VerifyEmail_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "pending@example.com", IsVerified: true}
	fx.uc.EXPECT().
		VerifyEmail(mock.Anything, &usecase.VerifyEmailInput{Code: "123456"}).
		Return(user, nil)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/verify-email", `{"code":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.User)
	assert.True(t, envelope.User.IsVerified)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/login",
		`{"email":"unknown@example.com","password":"whatever"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid email or password", envelope.Message)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "known@example.com"}
	fx.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "known@example.com", Password: "Password123!"}).
		Return(&usecase.SessionOutput{SessionToken: "session-token", User: user}, nil)
	fx.tokenSvc.EXPECT().SessionDuration().Return(7 * 24 * time.Hour)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/login",
		`{"email":"known@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "session-token", cookie.Value)
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/logout", ``)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_CheckAuth_MissingCookie(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Unauthorized - invalid or missing token", envelope.Message)
}

func TestAuthHandler_CheckAuth_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Validate("garbage").Return(uuid.Nil, errors.New("invalid token"))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_CheckAuth_Success(t *testing.T) {
	fx := createTestServer(t)

	user := &entity.User{ID: uuid.New(), Email: "known@example.com", IsVerified: true}
	fx.tokenSvc.EXPECT().Validate("valid-token").Return(user.ID, nil)
	fx.uc.EXPECT().CheckAuth(mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.User)
	assert.Equal(t, user.ID.String(), envelope.User.ID)
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "known@example.com"}).
		Return(nil)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/forgot-password", `{"email":"known@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Password reset link sent to your email", envelope.Message)
}

func TestAuthHandler_ResetPassword_TokenFromPath(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
			Token:    "a1b2c3d4e5f6",
			Password: "NewPassword456!",
		}).
		Return(nil)

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/reset-password/a1b2c3d4e5f6",
		`{"password":"NewPassword456!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Password reset successful", envelope.Message)
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(errors.Wrap(domainerrors.ErrInvalidResetToken, "no account matches reset token"))

	rec := doJSON(fx.server, http.MethodPost, "/api/auth/reset-password/deadbeef",
		`{"password":"NewPassword456!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid or expired reset token", envelope.Message)
}
