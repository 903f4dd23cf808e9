package validation

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trims raw and checks it's length in characters. max <= 0 means no upper bound.
func Text(raw string, min int, max int) (string, *Error.Status) {
	v := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(v)

	if length < min {
		return "", badRequest("Texto deve ter pelo menos " + strconv.Itoa(min) + " caracteres")
	}
	if max > 0 && length > max {
		return "", badRequest("Texto deve ter no máximo " + strconv.Itoa(max) + " caracteres")
	}

	return v, nil
}

// Returns canonical option matching raw (case-insensitive).
func Option(raw string, options []string) (string, *Error.Status) {
	v := strings.TrimSpace(raw)

	for _, opt := range options {
		if strings.EqualFold(opt, v) {
			return opt, nil
		}
	}

	return "", badRequest("Opção inválida. Opções válidas: " + strings.Join(options, ", "))
}

const MinUsernameLength = 3

func Username(username string) *Error.Status {
	if utf8.RuneCountInString(strings.TrimSpace(username)) < MinUsernameLength {
		return Error.NewStatusError(
			"Usuário deve ter pelo menos "+strconv.Itoa(MinUsernameLength)+" caracteres",
			http.StatusBadRequest,
		)
	}
	return nil
}

const MinPasswordLength = 8
const PasswordSpecialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"

// Returns list of unsatisfied password requirements, empty if password is strong.
func Password(password string) []string {
	var upper, lower, digit, special bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}

	unmet := []string{}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		unmet = append(unmet, "Mínimo de "+strconv.Itoa(MinPasswordLength)+" caracteres")
	}
	if !upper {
		unmet = append(unmet, "Pelo menos uma letra maiúscula")
	}
	if !lower {
		unmet = append(unmet, "Pelo menos uma letra minúscula")
	}
	if !digit {
		unmet = append(unmet, "Pelo menos um número")
	}
	if !special {
		unmet = append(unmet, "Pelo menos um caractere especial ("+PasswordSpecialChars+")")
	}

	return unmet
}
