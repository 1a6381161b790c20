// Package validation evaluates the per-field constraint tables declared on
// input structs and reports failures as field-keyed message lists, the shape
// form UIs render next to each input.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names, not Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notfuture", notFuture)
	return v
}

// notFuture rejects time.Time values after the current instant
func notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(time.Now())
}

// Fields validates in against its declared constraints and returns the
// failures keyed by field name. An empty map means the value is valid.
func Fields(in interface{}) map[string][]string {
	errs := map[string][]string{}

	err := validate.Struct(in)
	if err == nil {
		return errs
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs[""] = []string{err.Error()}
		return errs
	}

	for _, fe := range invalid {
		field := fe.Field()
		errs[field] = append(errs[field], message(fe))
	}
	return errs
}

// message translates a single constraint failure into the message a form
// displays next to the field.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), "'", ""))
	case "alphanum":
		return "must be alphanumeric"
	case "notfuture":
		return "must not be in the future"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
