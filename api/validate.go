package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/portfolio-backend/errs"
)

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{validate: v}
}

// check returns one FieldError per failing field and whether every failure
// was a missing required value.
func (v *requestValidator) check(i any) ([]errs.FieldError, bool) {
	err := v.validate.Struct(i)
	if err == nil {
		return nil, false
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "payload", Message: err.Error()}}, false
	}

	fields := make([]errs.FieldError, 0, len(validationErrors))
	onlyMissing := true
	for _, fe := range validationErrors {
		if fe.Tag() != "required" {
			onlyMissing = false
		}
		fields = append(fields, errs.FieldError{Field: fe.Field(), Message: v.getErrorMessage(fe)})
	}
	return fields, onlyMissing
}

// Validate reports missing required fields as "Missing required fields" and
// anything else as "Validation failed".
func (v *requestValidator) Validate(i any) error {
	fields, onlyMissing := v.check(i)
	switch {
	case len(fields) == 0:
		return nil
	case onlyMissing:
		return errs.NewMissingFieldsError(fields)
	default:
		return errs.NewValidationError(fields)
	}
}

// ValidateSchema always reports "Validation failed".
func (v *requestValidator) ValidateSchema(i any) error {
	fields, _ := v.check(i)
	if len(fields) == 0 {
		return nil
	}
	return errs.NewValidationError(fields)
}

func (v *requestValidator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

// invalidField builds the single-field validation error used for values
// the struct tags cannot express, such as dates.
func invalidField(field, message string) error {
	return errs.NewValidationError([]errs.FieldError{{Field: field, Message: message}})
}
