package validation

import (
	Error "classroom/packages/common/errors"
	"regexp"
	"strings"
)

// Loose pattern, accepts anything shaped like local@domain.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Conventional address charset with TLD of at least 2 letters.
var strictEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) *Error.Validation {
	return match(emailPattern, email)
}

func StrictEmail(email string) *Error.Validation {
	return match(strictEmailPattern, email)
}

func match(pattern *regexp.Regexp, v string) *Error.Validation {
	if strings.TrimSpace(v) == "" {
		return Error.NoValue
	}
	if !pattern.MatchString(v) {
		return Error.InvalidValue
	}
	return nil
}
