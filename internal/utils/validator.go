package utils

import (
	"github.com/go-playground/validator/v10"

	"chefy/domain"
)

var Validate *validator.Validate

// InitValidator builds the shared validator with the profile option tags.
func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dietary", oneOf(domain.DietaryOptions))
	_ = v.RegisterValidation("allergy", oneOf(domain.AllergyOptions))
	_ = v.RegisterValidation("household", oneOf(domain.HouseholdOptions))
	_ = v.RegisterValidation("locale", oneOf(domain.Locales))
	return v
}

func oneOf(options []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, o := range options {
			if o == value {
				return true
			}
		}
		return false
	}
}
