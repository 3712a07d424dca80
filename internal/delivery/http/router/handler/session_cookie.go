package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatekeeper/config"
)

// newSessionCookie builds the HTTP-only session cookie carrying the token.
// SameSite=Strict keeps the cookie off cross-site requests; Secure follows
// the deployment config so local development over plain HTTP still works.
func newSessionCookie(cfg *config.CookieConfig, token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// setSessionCookie attaches a fresh session cookie to the response.
func setSessionCookie(c echo.Context, cfg *config.CookieConfig, token string, maxAge time.Duration) {
	c.SetCookie(newSessionCookie(cfg, token, maxAge))
}

// clearSessionCookie instructs the client to drop the session cookie.
func clearSessionCookie(c echo.Context, cfg *config.CookieConfig) {
	cookie := newSessionCookie(cfg, "", 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}
