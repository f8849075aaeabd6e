package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateInput checks a payload struct before it is handed to the
// transport. Failures surface as ErrInvalidInput, never as an HTTP call.
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validationMessage(err))
	}
	return nil
}

// validationMessage flattens validator errors into a readable message.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' is required", e.Field()))
		case "email":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' must be a valid email address", e.Field()))
		case "oneof":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' must be one of [%s]", e.Field(), e.Param()))
		case "gte":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' must be greater than or equal to %s", e.Field(), e.Param()))
		case "lte":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' must be less than or equal to %s", e.Field(), e.Param()))
		case "max":
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' must be at most %s characters", e.Field(), e.Param()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
