// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request structs using `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json or form name
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &CustomValidator{validate: v}
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return fld.Name
}

// Validate implements echo.Validator.
// Field failures are collapsed into a single VALIDATION_FAILED error listing each field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "e164":
		return field + " must be an E.164 phone number"
	case "email":
		return field + " must be a valid email"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
