package healthcontroller

import (
	"classroom/packages/common/util"
	ResponseBody "classroom/packages/presentation/data/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

// @Summary		Health check
// @ID				health
// @Tags			service
// @Produce		json
// @Success		200	{object}	responsebody.Health
// @Router			/health [get]
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ResponseBody.Health{
		Status:    "healthy",
		Timestamp: util.Timestamp(),
	})
}

// @Summary		Greeting
// @ID				greeting
// @Tags			service
// @Produce		json
// @Success		200	{object}	responsebody.Message
// @Router			/saudacao [get]
func Greeting(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ResponseBody.Message{Message: "Olá! Bem-vindo ao servidor."})
}
