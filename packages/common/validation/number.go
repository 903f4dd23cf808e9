package validation

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strconv"
	"strings"
)

func badRequest(msg string) *Error.Status {
	return Error.NewStatusError(msg, http.StatusBadRequest)
}

// Parses integer from raw. Bounds are inclusive, nil bound is not checked.
func Integer(raw string, min *int, max *int) (int, *Error.Status) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, badRequest("'" + raw + "' não é um número inteiro válido")
	}

	if min != nil && v < *min {
		return 0, badRequest("Valor deve ser maior ou igual a " + strconv.Itoa(*min))
	}
	if max != nil && v > *max {
		return 0, badRequest("Valor deve ser menor ou igual a " + strconv.Itoa(*max))
	}

	return v, nil
}

// Parses float from raw, comma is accepted as decimal separator.
// Bounds are inclusive, nil bound is not checked.
func Float(raw string, min *float64, max *float64) (float64, *Error.Status) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, badRequest("'" + raw + "' não é um número válido")
	}

	if min != nil && v < *min {
		return 0, badRequest("Valor deve ser maior ou igual a " + strconv.FormatFloat(*min, 'f', -1, 64))
	}
	if max != nil && v > *max {
		return 0, badRequest("Valor deve ser menor ou igual a " + strconv.FormatFloat(*max, 'f', -1, 64))
	}

	return v, nil
}

const MinAge = 0
const MaxAge = 150
const AdultAge = 18

// Returns parsed age and whether it belongs to a minor.
func Age(raw string) (age int, minor bool, err *Error.Status) {
	min, max := MinAge, MaxAge

	age, err = Integer(raw, &min, &max)
	if err != nil {
		return 0, false, badRequest("Idade deve ser um número entre 0 e 150")
	}

	return age, age < AdultAge, nil
}
