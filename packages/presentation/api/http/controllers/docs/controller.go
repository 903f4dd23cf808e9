package docscontroller

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var swaggerHandler = echoSwagger.EchoWrapHandler(
	echoSwagger.DocExpansion("list"),
	echoSwagger.PersistAuthorization(true),
)

// @Summary		This page
// @Description	API Documentation, available only in debug mode
// @ID				api-docs
// @Tags			service
// @Router			/docs/index.html [get]
func Swagger(ctx echo.Context) error {
	return swaggerHandler(ctx)
}
