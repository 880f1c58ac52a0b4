package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a form struct and reports the first failing field
// as a *ValidationError.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: "is required"}
	case "min":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("must be at least %s", fe.Param())}
	case "max":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("must be at most %s", fe.Param())}
	default:
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed %s check", fe.Tag())}
	}
}
