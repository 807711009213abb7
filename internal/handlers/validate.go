package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all handlers; the instance caches struct metadata.
var validate = validator.New()

// validationMessage turns validator errors into a single readable line.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
