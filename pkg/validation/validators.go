package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("user_type", ValidUserType)
	_ = v.RegisterValidation("salary", ValidSalary)
}

// ValidUserType accepts the roles that can self-register. Admin accounts are
// provisioned separately.
func ValidUserType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "applicant", "employer":
		return true
	}
	return false
}

// ValidSalary validates that a string holds a finite decimal number
func ValidSalary(fl validator.FieldLevel) bool {
	_, err := ParseSalary(fl.Field().String())
	return err == nil
}

// ParseSalary parses a salary, rejecting NaN and infinities.
func ParseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
