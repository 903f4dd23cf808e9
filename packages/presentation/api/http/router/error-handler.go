package router

import (
	Error "classroom/packages/common/errors"
	controller "classroom/packages/presentation/api/http/controllers"
	"classroom/packages/presentation/api/http/request"
	ResponseBody "classroom/packages/presentation/data/response"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func errorMessage(code int, message any) string {
	switch m := message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case nil:
		return http.StatusText(code)
	default:
		return fmt.Sprint(m)
	}
}

func handleHttpError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := Error.StatusInternalError.Error()

	var httpErr *echo.HTTPError

	if is, e := Error.IsStatusError(err); is {
		code = e.Status()
		message = e.Error()
	} else if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = errorMessage(code, httpErr.Message)

		switch code {
		case http.StatusNotFound:
			if httpErr == echo.ErrNotFound {
				message = "Rota não encontrada"
			}
		case http.StatusMethodNotAllowed:
			message = "Método não permitido"
		case http.StatusRequestEntityTooLarge:
			message = "Corpo da requisição muito grande"
		case http.StatusInternalServerError:
			message = Error.StatusInternalError.Error()
		}
	}

	reqMeta := request.GetMetadata(ctx)

	if code >= http.StatusInternalServerError {
		controller.Logger.Error(message, err.Error(), reqMeta)
	} else {
		controller.Logger.Debug(fmt.Sprintf("%d %s", code, message), reqMeta)
	}

	var e error

	if ctx.Request().Method == http.MethodHead {
		e = ctx.NoContent(code)
	} else {
		e = ctx.JSON(code, ResponseBody.Error{Error: message})
	}

	if e != nil {
		controller.Logger.Error("Failed to send error response", e.Error(), reqMeta)
	}
}
