package helper

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var rePhone = regexp.MustCompile(`^[0-9]{2,3}-?[0-9]{3,4}-?[0-9]{4}$`)

// Validate is shared by every controller so the custom tags are registered once.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// kr_phone: 010-1234-5678, 01012345678, 02-123-4567 ...
	_ = v.RegisterValidation("kr_phone", func(fl validator.FieldLevel) bool {
		s := strings.ReplaceAll(fl.Field().String(), " ", "")
		return rePhone.MatchString(s)
	})
	return v
}

// FirstInvalidField returns the struct field name of the first failed rule,
// or "" when err is not a validation error.
func FirstInvalidField(err error) (field, tag string) {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		return ve[0].Field(), ve[0].Tag()
	}
	return "", ""
}
