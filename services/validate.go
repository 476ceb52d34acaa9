package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"planner/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	UseJSONNames(v)
	return v
}

// UseJSONNames makes v report fields by their json names, so issues line up
// with the request body. Also applied to gin's validator at startup.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name = f.Tag.Get("form")
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		if vErr := AsValidationError(err); vErr != nil {
			return vErr
		}
		return err
	}
	return nil
}

// AsValidationError converts validator failures into a *ValidationError.
// It returns nil for any other error.
func AsValidationError(err error) *ValidationError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Issues = append(out.Issues, dto.Issue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return out
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "hexcolor":
		return "must be a hex color like #3b82f6"
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	}
	return "is invalid"
}
