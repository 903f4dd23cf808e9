package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error with HTTP-compatible status code.
// Domain and storage layers return it, presentation converts it to transport errors.
type Status struct {
	status  int
	message string
}

// Panics if status is out of 100-599 range.
func NewStatusError(message string, status int) *Status {
	if status < 100 || status > 599 {
		panic(fmt.Sprintf("invalid error status %d: must be between 100 and 599", status))
	}
	return &Status{status: status, message: message}
}

func (e *Status) Error() string {
	return e.message
}

func (e *Status) Status() int {
	return e.status
}

type errorSide string

const (
	ClientSide errorSide = "client"
	ServerSide errorSide = "server"
)

// Panics if status is neither 4xx nor 5xx.
func (e *Status) Side() errorSide {
	switch e.status / 100 {
	case 4:
		return ClientSide
	case 5:
		return ServerSide
	}
	panic(fmt.Sprintf("error status %d has no side: must be 4xx or 5xx", e.status))
}

// Searches err chain for *Status.
func IsStatusError(err error) (bool, *Status) {
	var e *Status
	if errors.As(err, &e) {
		return true, e
	}
	return false, nil
}

var (
	StatusInternalError = NewStatusError("Erro interno do servidor", http.StatusInternalServerError)
	StatusNotFound      = NewStatusError("Recurso não encontrado", http.StatusNotFound)
	StatusTimeout       = NewStatusError("Tempo de espera excedido", http.StatusRequestTimeout)
	StatusConflict      = NewStatusError("Registro já existe", http.StatusConflict)
)
