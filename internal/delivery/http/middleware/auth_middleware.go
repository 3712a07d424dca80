package middleware

import (
	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates the session cookie on protected routes.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Cookie.Name,
	}
}

// Authenticate reads the session cookie, validates the token it carries and
// stores the account ID on the context. A missing or invalid cookie is the
// one protocol failure that answers 401 instead of 400.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "session cookie missing")
		}

		userID, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "session token rejected")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
