package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

var languageCode = regexp.MustCompile(`^[A-Z]{2,8}$`)

func New() *Validator {
	v := validator.New()

	// ALL or a language code, any case.
	v.RegisterValidation("langfilter", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		value = strings.ToUpper(strings.TrimSpace(value))
		return value == "ALL" || languageCode.MatchString(value)
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return strings.TrimSpace(value) != ""
	})

	// Links must be http(s); telegram handles like @name are accepted too.
	v.RegisterValidation("botlink", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "@") {
			return len(value) > 1 && !strings.ContainsAny(value, " \t\n")
		}
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return false
		}
		return v.Var(value, "url") == nil
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
