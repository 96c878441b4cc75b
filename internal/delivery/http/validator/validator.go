// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "bazar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator wraps a validator instance for echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used for request body validation.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags on a bound request body. Violations render
// through the application error taxonomy so the envelope stays uniform.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
