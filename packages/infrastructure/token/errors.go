package token

import (
	Error "classroom/packages/common/errors"
	"net/http"
)

// According to RFC 7235 (https://datatracker.ietf.org/doc/html/rfc7235#section-3.1)
// 401 response status code indicates that the request lacks VALID authentication credentials,
// no matter if token was invalid, missing or malformed.

var TokenMalformed = Error.NewStatusError(
	"Token inválido ou expirado",
	http.StatusUnauthorized,
)

var TokenExpired = Error.NewStatusError(
	"Token inválido ou expirado",
	http.StatusUnauthorized,
)

var TokenInvalidSignature = Error.NewStatusError(
	"Token inválido ou expirado",
	http.StatusUnauthorized,
)

var TokenMissingRequiredClaims = Error.NewStatusError(
	"Token inválido ou expirado",
	http.StatusUnauthorized,
)

var TokenMissing = Error.NewStatusError(
	"Token ausente",
	http.StatusUnauthorized,
)

func IsTokenError(err *Error.Status) bool {
	return err == TokenMalformed ||
		err == TokenExpired ||
		err == TokenInvalidSignature ||
		err == TokenMissingRequiredClaims ||
		err == TokenMissing
}
