package handlers

import (
	"sync"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("assumptionkey", validateAssumptionKey)
	})
}

// validateAssumptionKey accepts only dotted names known to domain.Assumptions.
func validateAssumptionKey(fl validator.FieldLevel) bool {
	_, ok := domain.DefaultAssumptions().Get(fl.Field().String())
	return ok
}
