package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
}

// NotBlank rejects strings that are empty after trimming whitespace.
// "required" alone accepts a value of all spaces, which would otherwise
// slip past the per-owner uniqueness check as a distinct name.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
