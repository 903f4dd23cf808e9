package authcontroller

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/core/user"
	UserDTO "classroom/packages/core/user/DTO"
	"classroom/packages/infrastructure/DB"
	"classroom/packages/infrastructure/auth/authn"
	"classroom/packages/infrastructure/token"
	controller "classroom/packages/presentation/api/http/controllers"
	"classroom/packages/presentation/api/http/request"
	RequestBody "classroom/packages/presentation/data/request"
	ResponseBody "classroom/packages/presentation/data/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

var guard *authn.LoginGuard

// Must be called after config is initialized.
func Init() {
	guard = authn.NewLoginGuard()
}

func newAuthResponse(ctx echo.Context, status int, message string, u *UserDTO.Basic) error {
	accessToken, err := token.NewAccessToken(&UserDTO.Payload{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
	})
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.JSON(status, ResponseBody.Auth{
		Message: message,
		User:    u.ToPublic(),
		Token:   accessToken.String(),
	})
}

// @Summary		Register
// @Description	Creates new user and returns access token
// @ID				register
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			body	body		requestbody.Registration	true	"Registration data"
// @Success		201		{object}	responsebody.Auth
// @Failure		400,409	{object}	responsebody.Error
// @Router			/auth/register [post]
func Register(ctx echo.Context) error {
	var body RequestBody.Registration

	if err := controller.Bind(ctx, &body); err != nil {
		return err
	}

	reg, err := user.NewRegistration(body.Nome.String(), body.Email.String(), body.Senha.String())
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Info("Registering user '"+reg.Email+"'...", reqMeta)

	u, err := DB.Database.CreateUser(reg)
	if err != nil {
		controller.Logger.Error("Failed to register user '"+reg.Email+"'", err.Error(), reqMeta)
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Registering user '"+reg.Email+"': OK", reqMeta)

	return newAuthResponse(ctx, http.StatusCreated, "Usuário criado", u)
}

// @Summary		Login
// @Description	Authenticates user by email and password. Login gets locked after too many failed attempts.
// @ID				login
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			body		body		requestbody.Login	true	"Credentials"
// @Success		200			{object}	responsebody.Auth
// @Failure		400,401,423	{object}	responsebody.Error
// @Router			/auth/login [post]
func Login(ctx echo.Context) error {
	var body RequestBody.Login

	if err := controller.BindAndValidate(ctx, &body); err != nil {
		return err
	}

	email := user.NormalizeEmail(body.Email.String())
	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Info("Authenticating user '"+email+"'...", reqMeta)

	if err := guard.Check(email); err != nil {
		controller.Logger.Warning("Login '"+email+"' is locked", reqMeta)
		return controller.ConvertErrorStatusToHTTP(err)
	}

	u, err := DB.Database.GetUserByEmail(email)
	if err != nil {
		if err.Side() == Error.ServerSide {
			controller.Logger.Error("Failed to authenticate user '"+email+"'", err.Error(), reqMeta)
			return controller.ConvertErrorStatusToHTTP(err)
		}
		// Only existing accounts can get locked
		return controller.ConvertErrorStatusToHTTP(authn.InvalidAuthCredentials)
	}

	if err := authn.CompareHashAndPassword(u.PasswordHash, body.Senha.String()); err != nil {
		controller.Logger.Info("Invalid password for user '"+email+"'", reqMeta)
		return controller.ConvertErrorStatusToHTTP(guard.Fail(email))
	}

	guard.Succeed(email)

	controller.Logger.Info("Authenticating user '"+email+"': OK", reqMeta)

	return newAuthResponse(ctx, http.StatusOK, "Login bem-sucedido", u)
}
