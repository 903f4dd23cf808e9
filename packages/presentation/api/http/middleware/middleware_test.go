package middleware

import (
	"classroom/packages/common/config"
	UserDTO "classroom/packages/core/user/DTO"
	"classroom/packages/infrastructure/token"
	"classroom/packages/presentation/api/http/request"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method string, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func ok(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	t.Run("sets standard security headers", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/posts")

		require.NoError(t, SecurityHeaders(ok)(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		headers := rec.Header()
		assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
		assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
		assert.NotEmpty(t, headers.Get("Permissions-Policy"))
		assert.Contains(t, headers.Get("Content-Security-Policy"), "default-src 'none'")
	})

	t.Run("relaxes CSP for docs", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/docs/index.html")

		require.NoError(t, SecurityHeaders(ok)(ctx))

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "script-src 'self' 'unsafe-inline' 'unsafe-eval'")
		assert.Contains(t, csp, "style-src 'self' 'unsafe-inline'")
	})
}

func TestNoCacheMiddleware(t *testing.T) {
	ctx, rec := newContext(http.MethodPost, "/auth/login")

	require.NoError(t, NoCache(ok)(ctx))

	headers := rec.Header()
	assert.Equal(t, "no-store, max-age=0", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
	assert.Equal(t, "0", headers.Get("Expires"))
}

func TestSensivityMiddleware(t *testing.T) {
	t.Run("sets endpoint sensivity in context", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/")

		handler := request.Middleware(Sensivity(SensitiveEndpoint)(func(ctx echo.Context) error {
			assert.Equal(t, SensitiveEndpoint, GetSensivity(ctx))
			return ok(ctx)
		}))

		require.NoError(t, handler(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to default", func(t *testing.T) {
		ctx, _ := newContext(http.MethodGet, "/")

		handler := request.Middleware(func(ctx echo.Context) error {
			assert.Equal(t, DefaultEndpoint, GetSensivity(ctx))
			return nil
		})

		require.NoError(t, handler(ctx))
	})

	t.Run("validation", func(t *testing.T) {
		assert.NoError(t, InsignificantEndpoint.Validate())
		assert.NoError(t, DefaultEndpoint.Validate())
		assert.NoError(t, SensitiveEndpoint.Validate())
		assert.Error(t, EndpointSensivity(42).Validate())
		assert.Equal(t, "sensitive", SensitiveEndpoint.String())
	})

	t.Run("unknown sensivity panics", func(t *testing.T) {
		assert.Panics(t, func() { Sensivity(EndpointSensivity(-1)) })
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := request.Middleware(Sensivity(SensitiveEndpoint)(RateLimiter(1, time.Minute, 1)(ok)))

	ctx, rec := newContext(http.MethodPost, "/auth/login")
	require.NoError(t, limiter(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Denied requests are written through echo's error handler
	for range 2 {
		ctx, rec = newContext(http.MethodPost, "/auth/login")
		require.NoError(t, limiter(ctx))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "Muitas requisições")
	}
}

func TestSecure(t *testing.T) {
	config.Apply(config.Defaults())
	config.Secret.JWTSecret = []byte("middleware-test-secret")

	payload := &UserDTO.Payload{ID: 7, Nome: "Ana", Email: "ana@example.com"}

	accessToken, err := token.NewAccessToken(payload)
	require.Nil(t, err)

	call := func(authHeader string) (*UserDTO.Payload, error) {
		ctx, _ := newContext(http.MethodGet, "/me")
		if authHeader != "" {
			ctx.Request().Header.Set(echo.HeaderAuthorization, authHeader)
		}

		var got *UserDTO.Payload

		e := request.Middleware(Secure(func(ctx echo.Context) error {
			got = request.GetPayload(ctx)
			return nil
		}))(ctx)

		return got, e
	}

	t.Run("valid token", func(t *testing.T) {
		got, err := call("Bearer " + accessToken.String())
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Token ausente"},
		{"no bearer prefix", accessToken.String(), "Token ausente"},
		{"malformed token", "Bearer not-a-token", "Token inválido ou expirado"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := call(test.header)
			assert.Nil(t, got)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
			assert.Equal(t, test.message, httpErr.Message)
		})
	}

	t.Run("token signed with another key", func(t *testing.T) {
		config.Secret.JWTSecret = []byte("another-secret-value")
		forged, err := token.NewAccessToken(payload)
		require.Nil(t, err)
		config.Secret.JWTSecret = []byte("middleware-test-secret")

		_, e := call("Bearer " + forged.String())

		var httpErr *echo.HTTPError
		require.ErrorAs(t, e, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
