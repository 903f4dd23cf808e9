package controller

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	ActionDTO "classroom/packages/core/action/DTO"
	"classroom/packages/presentation/api/http/request"
	"classroom/packages/presentation/api/http/response"
	RequestBody "classroom/packages/presentation/data/request"
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

var Logger = logger.NewSource("CONTROLLER", logger.Default)

// Server side errors keep their message, it's already generic (see Error.StatusInternalError)
func ConvertErrorStatusToHTTP(err *Error.Status) *echo.HTTPError {
	return echo.NewHTTPError(err.Status(), err.Error())
}

func Bind(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		Logger.Debug("Failed to bind request: "+err.Error(), request.GetMetadata(ctx))
		return err
	}
	return nil
}

func BindAndValidate[T RequestBody.Validator](ctx echo.Context, dest T) error {
	reqMeta := request.GetMetadata(ctx)

	Logger.Trace("Binding and validating request...", reqMeta)

	if err := Bind(ctx, dest); err != nil {
		return err
	}

	if err := dest.Validate(); err != nil {
		Logger.Debug("Request validation failed: "+err.Error(), reqMeta)
		return ConvertErrorStatusToHTTP(err)
	}

	Logger.Trace("Binding and validating request: OK", reqMeta)

	return nil
}

// Can be used only on routes secured by middleware.Secure.
func NewBasicAction(ctx echo.Context) *ActionDTO.Basic {
	payload := request.GetPayload(ctx)
	if payload == nil {
		Logger.Panic(
			"Failed to create action",
			"Access token payload is missing (check if route is secured)",
			request.GetMetadata(ctx),
		)
		return nil
	}
	return &ActionDTO.Basic{RequesterID: payload.ID}
}

func NewTargetedAction(ctx echo.Context, targetID int64) *ActionDTO.Targeted {
	return NewBasicAction(ctx).ToTargeted(targetID)
}

// Parses positive integer path parameter.
// Non-integer values are treated as unknown route.
func ParseID(ctx echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.RouteNotFound
	}
	return id, nil
}

func queryInt(ctx echo.Context, key string, fallback int) (int, bool) {
	raw := ctx.QueryParam(key)
	if raw == "" {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Reads 'page' and 'per_page' query params.
// Page is clamped to [1, math.MaxInt/maxSize+1] so offset can't overflow,
// page size is clamped to [1, maxSize].
func ParsePagination(ctx echo.Context, defaultSize int, maxSize int) (page int, perPage int, err error) {
	page, okPage := queryInt(ctx, "page", 1)
	perPage, okSize := queryInt(ctx, "per_page", defaultSize)

	if !okPage || !okSize {
		return 0, 0, response.InvalidPagination
	}

	return min(max(page, 1), math.MaxInt/maxSize+1), min(max(perPage, 1), maxSize), nil
}

