package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("vehicle", validateVehicle); err != nil {
		return
	}
	if err := validate.RegisterValidation("theme", validateTheme); err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateVehicle(fl validator.FieldLevel) bool {
	vehicle := fl.Field().String()
	validVehicles := []string{"car", "motorcycle", "van", "truck"}

	for _, v := range validVehicles {
		if vehicle == v {
			return true
		}
	}
	return false
}

func validateTheme(fl validator.FieldLevel) bool {
	theme := fl.Field().String()
	return theme == "light" || theme == "dark"
}

func IsValidEmail(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	re := regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return re.MatchString(email)
}
