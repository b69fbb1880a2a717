package validator

import (
	"log"

	"replink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain rules into the validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time failure, nothing to recover
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-decision", validateApplicationDecision)
}

func validateApplicationDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// 'required' handles empties
		return true
	}
	return models.ValidDecision(models.ApplicationStatus(value))
}
