// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New returns a validator with the non-standard notblank tag registered.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	// notblank rejects whitespace-only strings, which required does not.
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{validate: v}
}

// Validate reports failed fields as ErrInvalidInput.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}

	return errors.Wrap(domainerrors.ErrInvalidInput, "invalid fields: "+strings.Join(fields, ", "))
}
