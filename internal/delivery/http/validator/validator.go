// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "rituality/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a single shared validate instance; it is safe for
// concurrent use and caches struct metadata.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request DTO. Failures surface
// as a 400 ValidationError carrying the first offending field.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(fieldErrs[0].Error())
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, "request validation failed")
	}

	return nil
}
