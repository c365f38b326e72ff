// Package validate wraps go-playground/validator behind a single Struct call
// that converts tag failures into the application's ValidationError with a
// stable human-readable message, run explicitly at the handler boundary.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/user/articlehub-go/apperror"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags. The first failure is
// reported; clients get one actionable message at a time.
func Struct(v interface{}) error {
	err := instance.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.NewValidationError("invalid request payload", err)
	}
	return apperror.NewValidationError(messageFor(verrs[0]), nil)
}

func messageFor(fe validator.FieldError) string {
	name := humanName(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", name, fe.Param())
	default:
		return name + " is invalid"
	}
}

// humanName turns a Go field name into the phrasing used in API messages:
// "FirstName" becomes "First name".
func humanName(field string) string {
	var words []string
	start := 0
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, field[start:i])
			start = i
		}
	}
	words = append(words, field[start:])

	for i, w := range words {
		if i == 0 {
			continue
		}
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}
