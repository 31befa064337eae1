package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Registration struct {
	Name     string `validate:"required,max=120"`
	Email    string `validate:"required,max=254,email"`
	Password string `validate:"required,max=256"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewRegistration normalizes raw registration input and validates it.
func NewRegistration(name, email, password string) (Registration, error) {
	reg := Registration{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Password: password,
	}

	if err := validate.Struct(reg); err != nil {
		return Registration{}, toValidationError(err)
	}

	return reg, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Msg: "invalid registration data"}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return &ValidationError{Msg: fmt.Sprintf("%s is required", field)}
	case "email":
		return &ValidationError{Msg: "email is not valid"}
	case "max":
		return &ValidationError{Msg: fmt.Sprintf("%s is too long", field)}
	default:
		return &ValidationError{Msg: fmt.Sprintf("%s is invalid", field)}
	}
}
