package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatekeeper/internal/domain/entity"
)

// Response is the unified API envelope. Every endpoint answers with it.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    *UserView  `json:"user,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// UserView is the outward-facing serialization of an account.
// The credential hash and any pending secrets never appear here.
type UserView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsVerified  bool       `json:"isVerified"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewUserView maps a domain entity to its outward-facing form.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		IsVerified:  user.IsVerified,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// Success writes a successful envelope carrying the account.
func Success(c echo.Context, statusCode int, user *entity.User, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		User:    NewUserView(user),
	})
}

// SuccessMessage writes a successful envelope with no account payload.
func SuccessMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Error writes a failure envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
