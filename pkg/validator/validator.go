package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so error keys match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field (e.g. "questions[0].question_text")
// to a message suitable for display next to the input.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			key := fieldKey(e.Namespace())
			label := humanize(e.Field())
			switch e.Tag() {
			case "required":
				errors[key] = label + " is required"
			case "email":
				errors[key] = "Please enter a valid email address"
			case "phone":
				errors[key] = "Please enter a valid phone number"
			case "url":
				errors[key] = "Please enter a valid URL"
			case "datetime":
				errors[key] = label + " must be a date in YYYY-MM-DD format"
			case "oneof":
				errors[key] = label + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "min":
				if e.Kind() == reflect.Slice {
					errors[key] = label + " must contain at least " + e.Param() + " item(s)"
				} else {
					errors[key] = label + " must be at least " + e.Param() + " characters"
				}
			case "max":
				errors[key] = label + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[key] = label + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[key] = label + " must be less than or equal to " + e.Param()
			default:
				errors[key] = label + " is invalid"
			}
		}
	}

	return errors
}

// fieldKey drops the root struct name from a validator namespace.
func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// humanize turns "first_name" into "First name".
func humanize(field string) string {
	if i := strings.Index(field, "["); i >= 0 {
		field = field[:i]
	}
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
