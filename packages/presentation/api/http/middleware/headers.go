package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type headerSet [][2]string

func (s headerSet) apply(h http.Header) {
	for _, kv := range s {
		h.Set(kv[0], kv[1])
	}
}

var securityHeaders = headerSet{
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Permissions-Policy", "camera=(), geolocation=(), microphone=(), usb=()"},
}

var noCacheHeaders = headerSet{
	{echo.HeaderCacheControl, "no-store, max-age=0"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// Swagger UI needs inline scripts and styles
const docsCSP = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' 'unsafe-eval'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data:; " +
	"font-src 'self'; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'; " +
	"form-action 'self'; " +
	"base-uri 'self'"

const apiCSP = "default-src 'none'; " +
	"script-src 'none'; " +
	"frame-ancestors 'none'; " +
	"form-action 'none'; " +
	"base-uri 'none'"

func SecurityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		h := ctx.Response().Header()

		securityHeaders.apply(h)

		csp := apiCSP
		if strings.HasPrefix(ctx.Request().URL.Path, "/docs") {
			csp = docsCSP
		}
		h.Set("Content-Security-Policy", csp)

		return next(ctx)
	}
}

// Used on auth endpoints, tokens and credentials mustn't be cached by clients or proxies.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		noCacheHeaders.apply(ctx.Response().Header())
		return next(ctx)
	}
}
