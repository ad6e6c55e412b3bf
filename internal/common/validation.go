package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the content rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
			return IsDigits(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsDigits reports whether s is a non-empty run of decimal digits, Arabic-Indic included.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsPhone accepts digits separated by '+', '-' or spaces.
func IsPhone(s string) bool {
	stripped := strings.NewReplacer("+", "", "-", "", " ", "").Replace(s)
	return IsDigits(stripped)
}

// IsSlug accepts the alphabet SlugifyUnicode emits: letters and digits of any
// script plus '-' and '_'.
func IsSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// ValidateStruct returns field errors keyed by json name, or nil when v is valid.
func ValidateStruct(v any) map[string]string {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"non_field_errors": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "digits":
		return "الرقم الانتخابي يجب أن يحتوي على أرقام فقط"
	case "phone":
		return "رقم الهاتف غير صحيح"
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "uuid":
		return "Must be a valid UUID."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gtefield":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "hexcolor":
		return "Enter a valid hex color such as #1A7F3C."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	}
	return "Invalid value."
}
