package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gobuffalo/validate/v3"

	"github.com/sureinsurance/sure-api/api"
)

// Model validation tool
var mValidate *validator.Validate

var fieldValidators = map[string]func(validator.FieldLevel) bool{
	"policyStatus":  validatePolicyStatus,
	"premiumStatus": validatePremiumStatus,
	"schemeType":    validateSchemeType,
}

func validateModel(m interface{}) *validate.Errors {
	vErrs := validate.NewErrors()

	if err := mValidate.Struct(m); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			vErrs.Add(err.StructNamespace(), err.Error())
		}
	}
	return vErrs
}

// flattenPopErrors - pop validation errors are complex structures, this flattens them to a simple string
func flattenPopErrors(popErrs *validate.Errors) string {
	var msgs []string
	for key, val := range popErrs.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, strings.Join(val, ", ")))
	}
	msg := strings.Join(msgs, " |")
	return msg
}

func validatePolicyStatus(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.PolicyStatus); ok {
		_, valid := ValidPolicyStatuses[value]
		return valid
	}
	return false
}

func validatePremiumStatus(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.PremiumStatus); ok {
		_, valid := ValidPremiumStatuses[value]
		return valid
	}
	return false
}

func validateSchemeType(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.SchemeType); ok {
		_, valid := ValidSchemeTypes[value]
		return valid
	}
	return false
}
