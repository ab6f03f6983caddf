package validation

import (
	"reflect"
	"strings"
	"time"

	"rewards-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
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

	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("page_size", validatePageSize)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Var validates a single value against tag
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// validateISODate accepts the date formats the transaction feed uses
func validateISODate(fl validator.FieldLevel) bool {
	_, ok := models.ParseRecordDate(fl.Field().String(), time.UTC)
	return ok
}

// validatePageSize accepts one of the table page sizes
func validatePageSize(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.IsValidTablePageSize(int(fl.Field().Int()))
	default:
		return false
	}
}
