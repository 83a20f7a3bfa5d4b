package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("datevalue", validateDateValue)
	validate.RegisterValidation("hhmm", validateClockValue)
	validate.RegisterValidation("consultation_type", validateConsultationType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateValue(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateClockValue(fl validator.FieldLevel) bool {
	_, err := time.Parse(ClockLayout, fl.Field().String())
	return err == nil
}

func validateConsultationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "video" || value == "phone" || value == "in-person"
}
