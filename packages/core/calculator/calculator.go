package calculator

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strings"
)

var ErrDivisionByZero = Error.NewStatusError(
	"ERRO: divisão por zero não é permitida",
	http.StatusBadRequest,
)
var ErrUnknownOperator = Error.NewStatusError(
	"Operador inválido. Operadores válidos: + - * / x",
	http.StatusBadRequest,
)

func Add(a float64, b float64) float64 {
	return a + b
}

func Subtract(a float64, b float64) float64 {
	return a - b
}

func Multiply(a float64, b float64) float64 {
	return a * b
}

func Divide(a float64, b float64) (float64, *Error.Status) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Applies op to a and b. "x" is an alias for "*".
func Eval(a float64, op string, b float64) (float64, *Error.Status) {
	switch strings.TrimSpace(op) {
	case "+":
		return Add(a, b), nil
	case "-":
		return Subtract(a, b), nil
	case "*", "x", "X":
		return Multiply(a, b), nil
	case "/":
		return Divide(a, b)
	}
	return 0, ErrUnknownOperator
}
