package validator

import (
	"github.com/go-playground/validator/v10"

	"mentorhub_backend/internal/models"
)

// registerCustomRules installs the domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	// booking_status: value must be inside the booking status enum.
	_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return models.BookingStatus(fl.Field().String()).IsValid()
	})
}
