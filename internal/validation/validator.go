package validation

import (
	"reflect"
	"strings"

	"pocketbank/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Var validates a single value against the given rule tag
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
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

	_ = v.RegisterValidation("transfer_amount", validateTransferAmount)
	_ = v.RegisterValidation("speech_language", validateSpeechLanguage)
	_ = v.RegisterValidation("screen", validateScreen)

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

// validateTransferAmount validates that a transfer amount string parses as a
// positive decimal with at most 2 decimal places
func validateTransferAmount(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
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

	// At most 2 decimal places
	return amount.Exponent() >= -2
}

// validateSpeechLanguage validates that a language code is well-formed BCP 47.
// Well-formed but unknown codes are accepted; the speech engine falls back to
// its default language for those at announce time.
func validateSpeechLanguage(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	_, err := language.Parse(code)
	return err == nil
}

// validateScreen validates that a screen name is one of the known screens
func validateScreen(fl validator.FieldLevel) bool {
	return models.IsValidScreen(fl.Field().String())
}
