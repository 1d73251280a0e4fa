package service

import (
	"errors"
	"regexp"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("hexcolor_or_empty", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || hexColorRe.MatchString(value)
		})
		validate.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
			return IsSupportedProvider(entity.Provider(fl.Field().String()))
		})
	})
}

func IsSupportedProvider(p entity.Provider) bool {
	switch p {
	case entity.ProviderGitHub, entity.ProviderGitLab, entity.ProviderGitea, entity.ProviderForgejo, entity.ProviderCustom:
		return true
	}
	return false
}

// validateStruct runs the validator and joins field errors under ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}
