package openmeteo

import (
	"errors"
	"strconv"
)

var ErrCityNotFound = errors.New("cidade não encontrada")
var ErrInvalidDays = errors.New("quantidade de dias deve estar entre 1 e " + strconv.Itoa(MaxForecastDays))

// Returned when API responds with non-2xx status.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return "erro na API: status " + strconv.Itoa(e.Status)
}

// Returned on transport failures, timeouts and when circuit breaker is open.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "erro de conexão: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
