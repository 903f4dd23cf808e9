package token

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	UserDTO "classroom/packages/core/user/DTO"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var tokenLogger = logger.NewSource("TOKEN", logger.Default)

type SignedToken struct {
	value string
	ttl   int64
}

func (t *SignedToken) String() string {
	return t.value
}

// TTL in milliseconds
func (t *SignedToken) TTL() int64 {
	return t.ttl
}

const (
	TokenIdClaimsKey   = "jti"
	ServiceIdClaimsKey = "iss"
	UserIdClaimsKey    = "sub"
	IssuedAtClaimsKey  = "iat"
	ExpiresAtClaimsKey = "exp"
	UserNameClaimsKey  = "nome"
	UserEmailClaimsKey = "email"
)

type Claims struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Converts claims into payload. Claims must be already validated.
func (c *Claims) Payload() (*UserDTO.Payload, *Error.Status) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, TokenMissingRequiredClaims
	}

	return &UserDTO.Payload{
		ID:    id,
		Nome:  c.Nome,
		Email: c.Email,
	}, nil
}

func newSignedToken(payload *UserDTO.Payload, ttl time.Duration, key []byte) (*SignedToken, *Error.Status) {
	now := time.Now().UTC()

	claims := Claims{
		Nome:  payload.Nome,
		Email: payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    config.App.ServiceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   strconv.FormatInt(payload.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString(key)
	if err != nil {
		tokenLogger.Error("Failed to sign token", err.Error(), nil)
		return nil, Error.StatusInternalError
	}

	return &SignedToken{tokenStr, ttl.Milliseconds()}, nil
}

func NewAccessToken(payload *UserDTO.Payload) (*SignedToken, *Error.Status) {
	return newSignedToken(
		payload,
		config.Auth.AccessTokenTTL(),
		config.Secret.JWTSecret,
	)
}

var jwtParserOptions = []jwt.ParserOption{
	jwt.WithLeeway(5 * time.Second),
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
}

func hmacKeyFunc(key []byte) func(token *jwt.Token) (any, error) {
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}
}

// Parses and validates given token
func ParseSignedToken(tokenStr string, key []byte) (*Claims, *Error.Status) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, hmacKeyFunc(key), jwtParserOptions...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, TokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, TokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, TokenInvalidSignature
		default:
			tokenLogger.Trace("Failed to parse signed token: "+err.Error(), nil)
			return nil, TokenMalformed
		}
	}

	if claims.Subject == "" ||
		claims.ExpiresAt == nil ||
		claims.IssuedAt == nil ||
		claims.ID == "" {
		return nil, TokenMissingRequiredClaims
	}

	return claims, nil
}

// Parses access token and returns it's payload.
func ParseAccessToken(tokenStr string) (*UserDTO.Payload, *Error.Status) {
	claims, err := ParseSignedToken(tokenStr, config.Secret.JWTSecret)
	if err != nil {
		return nil, err
	}
	return claims.Payload()
}
