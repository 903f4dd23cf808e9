package middleware

import (
	"classroom/packages/presentation/api/http/request"
	"errors"

	"github.com/labstack/echo/v4"
)

type EndpointSensivity int

const (
	InsignificantEndpoint EndpointSensivity = iota
	DefaultEndpoint
	SensitiveEndpoint
)

func (s EndpointSensivity) Validate() error {
	if s < InsignificantEndpoint || s > SensitiveEndpoint {
		return errors.New("unknown endpoint sensivity")
	}
	return nil
}

func (s EndpointSensivity) String() string {
	switch s {
	case InsignificantEndpoint:
		return "insignificant"
	case DefaultEndpoint:
		return "default"
	case SensitiveEndpoint:
		return "sensitive"
	default:
		return "unknown"
	}
}

const sensivityKey = "endpoint_sensivity"

func Sensivity(s EndpointSensivity) echo.MiddlewareFunc {
	if err := s.Validate(); err != nil {
		log.Panic("Failed to set endpoint sensivity", err.Error(), nil)
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(sensivityKey, s)
			return next(ctx)
		}
	}
}

// Returns DefaultEndpoint if Sensivity middleware wasn't applied.
func GetSensivity(ctx echo.Context) EndpointSensivity {
	s, ok := ctx.Get(sensivityKey).(EndpointSensivity)
	if !ok {
		log.Trace("Endpoint sensivity isn't set, using default", request.GetMetadata(ctx))
		return DefaultEndpoint
	}
	return s
}
