// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "fixflow/internal/domain/errors"

	validatorLib "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validatorLib.Validate
}

// New creates the request validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: validatorLib.New(validatorLib.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and converts failures to the application error
// taxonomy so the error handler renders a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
