package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_format", validateMonthFormat)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// validateMonthFormat validates a calendar month in YYYY-MM form.
// The pattern keeps month strings lexically ordered, which the deposit
// calendar relies on.
func validateMonthFormat(fl validator.FieldLevel) bool {
	return monthPattern.MatchString(fl.Field().String())
}

// validateMoneyAmount validates a decimal money string: positive,
// at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	return amount.Exponent() >= -2
}

// validateCurrencyCode validates a three-letter ISO 4217 style code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	return strings.ToUpper(code) == code
}
