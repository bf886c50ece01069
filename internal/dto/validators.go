package dto

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ISO 4217 alpha codes are three letters.
var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidators installs the binding-tag validators used by the
// request DTOs. Must run once before the router starts serving.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}
