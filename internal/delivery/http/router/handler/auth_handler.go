// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	cookie   *config.CookieConfig
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Usecase      usecase.AuthUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.Usecase,
		tokenSvc: params.TokenService,
		cookie:   params.Config.Cookie,
		logger:   params.Logger,
	}
}

// Signup handles the registration request. On success the new account is
// logged in immediately: the session cookie is set even though the email
// is not verified yet.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "failed to bind signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cookie, output.SessionToken, h.tokenSvc.SessionDuration())

	return response.Success(c, http.StatusCreated, output.User, "User created successfully")
}

// VerifyEmail handles redemption of the emailed verification code.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var input usecase.VerifyEmailInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "failed to bind verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.VerifyEmail(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Email verified successfully")
}

// Login handles the credential check and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "failed to bind login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cookie, output.SessionToken, h.tokenSvc.SessionDuration())

	return response.Success(c, http.StatusOK, output.User, "Logged in successfully")
}

// Logout clears the session cookie. It never fails and requires no session.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cookie)

	return response.SuccessMessage(c, http.StatusOK, "Logged out successfully")
}

// CheckAuth answers with the account behind the session cookie. The auth
// middleware has already validated the token at this point.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated identity on request")
	}

	user, err := h.uc.CheckAuth(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// ForgotPassword handles a password reset request.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "failed to bind forgot-password input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Password reset link sent to your email")
}

// ResetPassword redeems the reset token carried in the URL path.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "failed to bind reset-password input")
	}
	input.Token = c.Param("token")
	if input.Token == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "reset token missing from path")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Password reset successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
