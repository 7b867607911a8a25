// Package validator plugs go-playground/validator into echo.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with required-struct checks enabled.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate runs the struct's `validate` tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
