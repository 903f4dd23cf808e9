package user

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/validation"
	UserDTO "classroom/packages/core/user/DTO"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

var ErrInvalidName = Error.NewStatusError(
	"Nome inválido (mínimo "+strconv.Itoa(MinNameLength)+" caracteres)",
	http.StatusBadRequest,
)
var ErrInvalidEmail = Error.NewStatusError(
	"Email inválido",
	http.StatusBadRequest,
)
var ErrInvalidPassword = Error.NewStatusError(
	"Senha inválida (mínimo "+strconv.Itoa(MinPasswordLength)+" caracteres)",
	http.StatusBadRequest,
)
var ErrEmailInUse = Error.NewStatusError(
	"Email já cadastrado",
	http.StatusConflict,
)
var ErrNotFound = Error.NewStatusError(
	"Usuário não encontrado",
	http.StatusNotFound,
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateName(nome string) *Error.Status {
	if utf8.RuneCountInString(strings.TrimSpace(nome)) < MinNameLength {
		return ErrInvalidName
	}
	return nil
}

// Email must be already normalized.
func ValidateEmail(email string) *Error.Status {
	if err := validation.Email(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) *Error.Status {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

// Normalizes registration data and validates it.
// Fields are checked in order: nome, email, password.
func NewRegistration(nome string, email string, password string) (*UserDTO.Registration, *Error.Status) {
	reg := &UserDTO.Registration{
		Nome:     strings.TrimSpace(nome),
		Email:    NormalizeEmail(email),
		Password: password,
	}

	if err := ValidateName(reg.Nome); err != nil {
		return nil, err
	}
	if err := ValidateEmail(reg.Email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(reg.Password); err != nil {
		return nil, err
	}

	return reg, nil
}
