package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate runs the struct's validate tags. On failure it returns the
// offending form fields mapped to a short message.
func Validate(v any) map[string]string {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe.Namespace())
		if _, seen := out[name]; !seen {
			out[name] = message(fe)
		}
	}
	return out
}

// fieldName turns "CreatePostForm.ImageURLs[1]" into "ImageURLs".
func fieldName(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.Slice {
			return "At most " + fe.Param() + " items are allowed."
		}
		return "At most " + fe.Param() + " characters are allowed."
	case "url":
		return "Must be a valid URL."
	case "gt":
		return "Invalid value."
	}
	return "Invalid value."
}
