// Package validator adapts go-playground validation to echo's Validator
// interface.
package validator

import (
	domainerrors "blog/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance; it is safe for concurrent
// use and caches struct metadata internally.
type Validator struct {
	validate *playground.Validate
}

// New builds the validator echo consults for every Bind-then-Validate call.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into the shared
// validation AppError so the error handler renders a 400 envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
