package errs

import "net/http"

// Result of a field check: value is either missing or malformed.
// Only NoValue and InvalidValue instances exist, compare with ==.
type Validation struct {
	message string
}

func (e *Validation) Error() string {
	return e.message
}

var (
	NoValue      = &Validation{"validation error: no value"}
	InvalidValue = &Validation{"validation error: invalid value"}
)

// Converts e into "Bad Request" status error with message matching its kind.
func (e *Validation) ToStatus(noValueMsg string, invalidValueMsg string) *Status {
	switch e {
	case NoValue:
		return NewStatusError(noValueMsg, http.StatusBadRequest)
	case InvalidValue:
		return NewStatusError(invalidValueMsg, http.StatusBadRequest)
	}
	panic("unknown validation error: " + e.message)
}
