// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	iso2Regex     = regexp.MustCompile(`^[A-Za-z]{2}$`)
	currencyRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

	registerOnce sync.Once
	registerErr  error
)

// Register installs iso2, currency and positive_decimal on gin's default validator.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn also makes the validator see decimal.Decimal as its string form,
// so tags on money fields run against the value instead of being skipped as a struct.
func RegisterOn(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("iso2", func(fl validator.FieldLevel) bool {
		return iso2Regex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currencyRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
}
