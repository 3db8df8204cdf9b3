package common

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phoneRegex  = regexp.MustCompile(`^[+0-9()\[\]\-\s]*$`)
)

// NewValidator returns a validator with the custom rules request DTOs use.
// "handle" allows letters, numbers and underscores; "phone" allows digits,
// spaces and +()[]-.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return handleRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// FieldErrors flattens a validator error into field -> message, suitable for
// the details map of a 400 response.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "is required"
		case "email":
			out[fe.Field()] = "must be a valid email"
		case "min":
			out[fe.Field()] = "is too short"
		case "max":
			out[fe.Field()] = "is too long"
		case "handle":
			out[fe.Field()] = "can only contain letters, numbers, and underscores"
		case "phone":
			out[fe.Field()] = "can include digits, spaces, and +()-"
		default:
			out[fe.Field()] = "is invalid"
		}
	}
	return out
}
