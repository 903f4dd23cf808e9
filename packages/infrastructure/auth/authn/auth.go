package authn

import (
	Error "classroom/packages/common/errors"
	"crypto/sha256"
	"encoding/base64"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

var InvalidAuthCredentials = Error.NewStatusError(
	"Credenciais inválidas",
	http.StatusUnauthorized,
)

// Cost of bcrypt hashing, lowered in tests.
var HashCost = bcrypt.DefaultCost

// bcrypt only accepts up to 72 bytes, so passwords of any length
// are reduced to a 44 bytes base64 encoded SHA-256 digest first.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func HashPassword(password string) (string, *Error.Status) {
	hashed, err := bcrypt.GenerateFromPassword(digest(password), HashCost)
	if err != nil {
		authnLogger.Error("Failed to hash password", err.Error(), nil)
		return "", Error.StatusInternalError
	}
	return string(hashed), nil
}

// IMPORTANT: This is expensive operation!
//
// Compares hashed password with it's possible plaintext equivalent.
// Returns nil on success, otherwise returns InvalidAuthCredentials error.
func CompareHashAndPassword(hash string, password string) *Error.Status {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), digest(password)); err != nil {
		return InvalidAuthCredentials
	}
	return nil
}
