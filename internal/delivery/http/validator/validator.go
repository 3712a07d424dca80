// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "gatekeeper/internal/domain/errors"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the validator used for request input structs.
func New() echo.Validator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation and maps failures onto the generic
// invalid-input error so responses never leak which field failed how.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return nil
}
