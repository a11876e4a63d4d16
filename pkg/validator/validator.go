package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields under their json names so error keys match the payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := fieldKey(e)
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "email":
				errors[key] = field + " must be a valid email address"
			case "min":
				errors[key] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[key] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[key] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[key] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[key] = field + " must be one of: " + e.Param()
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldKey strips the root struct name off the namespace, so errors on
// nested sections come out dotted ("patient.email") and top-level fields
// come out bare ("email").
func fieldKey(e validator.FieldError) string {
	key := e.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}
	return key
}
