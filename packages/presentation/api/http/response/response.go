package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var ContentMustBeJSON = echo.NewHTTPError(
	http.StatusBadRequest,
	"Conteúdo deve ser JSON",
)

var FailedToReadRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Falha ao ler o corpo da requisição",
)

var FailedToDecodeRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"JSON inválido",
)

var RouteNotFound = echo.NewHTTPError(
	http.StatusNotFound,
	"Rota não encontrada",
)

var TooManyRequests = echo.NewHTTPError(
	http.StatusTooManyRequests,
	"Muitas requisições, tente novamente mais tarde",
)

var InvalidPagination = echo.NewHTTPError(
	http.StatusBadRequest,
	"Parâmetros de paginação inválidos",
)

