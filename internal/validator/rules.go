package validator

import (
	"github.com/go-playground/validator/v10"

	"gameconnect_backend/internal/models"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("cricket_role", validateCricketRole); err != nil {
		return err
	}
	return v.RegisterValidation("gender", validateGender)
}

// validateCricketRole принимает только хранимые роли; пустое значение
// пропускается (поле опционально, required задается отдельным тегом).
func validateCricketRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CricketRole(value) {
	case models.CricketRoleBatsman, models.CricketRoleBowler, models.CricketRoleAllRounder:
		return true
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Gender(value) {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}
