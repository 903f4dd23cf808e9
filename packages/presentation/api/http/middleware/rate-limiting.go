package middleware

import (
	"classroom/packages/presentation/api/http/request"
	"classroom/packages/presentation/api/http/response"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func rateLimiterIdentifierExtractor(ctx echo.Context) (string, error) {
	return ctx.RealIP(), nil
}

func rateLimiterDenyHandler(retryAfter time.Duration) func(ctx echo.Context, id string, err error) error {
	seconds := max(int(retryAfter.Seconds()), 1)

	return func(ctx echo.Context, id string, err error) error {
		ctx.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))

		reqMeta := request.GetMetadata(ctx)

		switch GetSensivity(ctx) {
		case InsignificantEndpoint:
			log.Trace("Request blocked by rate limiter", reqMeta)
		case SensitiveEndpoint:
			log.Warning("Request blocked by rate limiter", reqMeta)
		default:
			log.Info("Request blocked by rate limiter", reqMeta)
		}

		return response.TooManyRequests
	}
}

// Allows n requests per window for every client IP, with burst of up to burst requests.
func RateLimiter(n int, window time.Duration, burst int) echo.MiddlewareFunc {
	every := window / time.Duration(n)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(every),
			Burst:     burst,
			ExpiresIn: window * 2,
		}),
		DenyHandler:         rateLimiterDenyHandler(every),
		IdentifierExtractor: rateLimiterIdentifierExtractor,
		ErrorHandler: func(ctx echo.Context, err error) error {
			return response.TooManyRequests
		},
	})
}

func Max5reqPerMinute() echo.MiddlewareFunc {
	return RateLimiter(5, time.Minute, 3)
}

func Max10reqPerSecond() echo.MiddlewareFunc {
	return RateLimiter(10, time.Second, 5)
}
