package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage runs struct validation and flattens the first
// failure into a form-friendly message, or "" when the input is valid.
func validationMessage(v any) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid request"
	}

	first := errs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, first.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, first.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, first.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
