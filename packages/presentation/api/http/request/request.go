package request

import (
	"classroom/packages/common/logger"
	UserDTO "classroom/packages/core/user/DTO"
	transport "classroom/packages/presentation/api/http"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"
)

const (
	metaKey    = "req_meta"
	payloadKey = "user_payload"
)

func newMeta(req *http.Request, requestID string) logger.Meta {
	ua := useragent.Parse(req.UserAgent())

	meta := logger.Meta{
		"addr":       req.RemoteAddr,
		"method":     req.Method,
		"path":       req.URL.Path,
		"user_agent": ua.String,
	}

	if requestID != "" {
		meta["request_id"] = requestID
	}
	if ua.Name != "" {
		meta["browser"] = ua.Name
	}
	if ua.OS != "" {
		meta["os"] = ua.OS
	}
	if ua.Bot {
		meta["bot"] = true
	}

	return meta
}

// This middleware must be applied to the router (after RequestID middleware)
// for the all functions in this package to work correctly.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)

		ctx.Set(metaKey, newMeta(ctx.Request(), requestID))

		return next(ctx)
	}
}

// Retrieves metadata from the context.
// Will panic if request.Middleware wasn't applied to the router.
func GetMetadata(ctx echo.Context) logger.Meta {
	switch m := ctx.Get(metaKey).(type) {
	case logger.Meta:
		return m
	case nil:
		transport.Logger.Panic(
			"Failed to get metadata from context",
			"Request meta wasn't set (check if middleware applied correctly)",
			newMeta(ctx.Request(), ""),
		)
		return nil
	default:
		transport.Logger.Panic(
			"Failed to get metadata from context",
			fmt.Sprintf("Request meta has invalid type. Expected logger.Meta, but got %T", m),
			newMeta(ctx.Request(), ""),
		)
		return nil
	}
}

func SetPayload(ctx echo.Context, payload *UserDTO.Payload) {
	ctx.Set(payloadKey, payload)
}

// Returns payload of the access token, nil if route isn't secured.
func GetPayload(ctx echo.Context) *UserDTO.Payload {
	payload, _ := ctx.Get(payloadKey).(*UserDTO.Payload)
	return payload
}
