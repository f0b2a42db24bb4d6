// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "shelf/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound input. Failures surface as a
// validation AppError so the error handler renders a 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
