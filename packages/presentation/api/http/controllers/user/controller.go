package usercontroller

import (
	UserDTO "classroom/packages/core/user/DTO"
	"classroom/packages/infrastructure/DB"
	controller "classroom/packages/presentation/api/http/controllers"
	"classroom/packages/presentation/api/http/request"
	ResponseBody "classroom/packages/presentation/data/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultUsersPageSize = 10
	maxUsersPageSize     = 100
)

// @Summary		Current user
// @ID				me
// @Tags			users
// @Produce		json
// @Success		200		{object}	userdto.Profile
// @Failure		401,404	{object}	responsebody.Error
// @Router			/me [get]
// @Security		BearerAuth
func Me(ctx echo.Context) error {
	u, err := DB.Database.GetUserByID(request.GetPayload(ctx).ID)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, u.ToProfile())
}

// @Summary		List users
// @Description	Newest users first
// @ID				list-users
// @Tags			users
// @Produce		json
// @Param			page		query		int	false	"Page number"
// @Param			per_page	query		int	false	"Page size"
// @Success		200			{object}	responsebody.UsersPage
// @Failure		400			{object}	responsebody.Error
// @Router			/users [get]
func List(ctx echo.Context) error {
	page, perPage, err := controller.ParsePagination(ctx, defaultUsersPageSize, maxUsersPageSize)
	if err != nil {
		return err
	}

	users, total, e := DB.Database.SearchUsers(page, perPage)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.UsersPage{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Users:   users,
	})
}

// @Summary		Get user
// @ID				get-user
// @Tags			users
// @Produce		json
// @Param			id	path		int	true	"User ID"
// @Success		200	{object}	userdto.Profile
// @Failure		404	{object}	responsebody.Error
// @Router			/users/{id} [get]
func Get(ctx echo.Context) error {
	id, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	u, e := DB.Database.GetUserByID(id)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, u.ToProfile())
}

const csvHeader = "id,nome,email,created_at"

func writeCSV(users []*UserDTO.Profile) string {
	var b strings.Builder

	b.WriteString(csvHeader)

	for _, u := range users {
		b.WriteByte('\n')
		b.WriteString(strconv.FormatInt(u.ID, 10))
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(u.Nome, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(u.Email)
		b.WriteByte(',')
		b.WriteString(u.CreatedAt)
	}

	return b.String()
}

// @Summary		Export users
// @Description	All users as CSV, ordered by id
// @ID				export-users
// @Tags			users
// @Produce		text/csv
// @Success		200	{string}	string
// @Router			/export/csv [get]
func ExportCSV(ctx echo.Context) error {
	users, err := DB.Database.ExportUsers()
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(writeCSV(users)))
}
