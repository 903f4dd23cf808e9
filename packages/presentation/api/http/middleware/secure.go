package middleware

import (
	"classroom/packages/infrastructure/token"
	"classroom/packages/presentation/api/http/request"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// Allows access only for requests with valid access token.
// Token payload can be retrieved via request.GetPayload.
func Secure(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqMeta := request.GetMetadata(ctx)

		log.Trace("Extracting access token from the request...", reqMeta)

		authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return echo.NewHTTPError(token.TokenMissing.Status(), token.TokenMissing.Error())
		}

		payload, err := token.ParseAccessToken(strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
		if err != nil {
			log.Debug("Invalid access token: "+err.Error(), reqMeta)
			ctx.Response().Header().Set(
				echo.HeaderWWWAuthenticate,
				`Bearer realm="api", error="invalid_token"`,
			)
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		request.SetPayload(ctx, payload)

		log.Trace("Extracting access token from the request: OK", reqMeta)

		return next(ctx)
	}
}
