package utils

import (
	"medipass-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("date_iso", validateDateISO)
	validate.RegisterValidation("not_blank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RolePatient,
		constvars.RoleDoctor,
		constvars.RoleNurse,
		constvars.RoleLabTechnician,
		constvars.RolePharmacist,
		constvars.RoleAdmin:
		return true
	}
	return false
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeLayoutHHMM, NormalizeTimeHHMM(fl.Field().String()))
	return err == nil
}

func validateDateISO(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutISO, fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
