package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the application-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// futuredate: the field must be a time.Time strictly after now.
	// Used by session booking, where a past date is a precondition
	// failure rather than a state-machine transition.
	return v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return t.After(time.Now())
	})
}
