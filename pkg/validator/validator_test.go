package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(loginForm{Email: "not-an-email", Password: "short"})
	msg := FormatValidationError(err)

	assert.Contains(t, msg, "Email must be a valid email")
	assert.Contains(t, msg, "Password must be at least 8 characters")
}

func TestFormatValidationError_PlainError(t *testing.T) {
	assert.Equal(t, "EOF", FormatValidationError(errors.New("EOF")))
}
