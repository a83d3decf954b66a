package util

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the storefront rules registered:
//
//	fullname  at least three whitespace-separated words
//	notblank  not empty after trimming spaces
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
			return len(strings.Fields(fl.Field().String())) >= 3
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

// ValidationError lists the fields of a form that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// Validate checks s against its `validate` tags and reports failures as a
// *ValidationError keyed by the struct field names.
func Validate(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	seen := map[string]bool{}
	var fields []string
	for _, fe := range verrs {
		if !seen[fe.Field()] {
			seen[fe.Field()] = true
			fields = append(fields, fe.Field())
		}
	}
	sort.Strings(fields)
	return &ValidationError{Fields: fields}
}

// Invalid builds a *ValidationError for fields checked outside struct tags.
func Invalid(fields ...string) error {
	return &ValidationError{Fields: fields}
}
