package validation

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"regexp"
	"strings"
)

// "(11) 98765-4321", "(11)3456-7890" or only digits (10 or 11 of them)
var phonePattern = regexp.MustCompile(`^\(\d{2}\)\s?\d{4,5}-\d{4}$|^\d{10,11}$`)

var nonDigit = regexp.MustCompile(`\D`)

func Phone(phone string) *Error.Validation {
	return match(phonePattern, phone)
}

func onlyDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

var invalidPhone = Error.NewStatusError(
	"Telefone deve ter 10 ou 11 dígitos",
	http.StatusBadRequest,
)

// Strips everything except digits and formats result as
// (XX) XXXXX-XXXX for mobile or (XX) XXXX-XXXX for landline numbers.
func FormatPhone(raw string) (string, *Error.Status) {
	if strings.TrimSpace(raw) == "" {
		return "", Error.NewStatusError("Telefone não pode estar vazio", http.StatusBadRequest)
	}

	digits := onlyDigits(raw)

	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:], nil
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:], nil
	default:
		return "", invalidPhone
	}
}
