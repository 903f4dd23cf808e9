package commentcontroller

import (
	"classroom/packages/core/comment"
	"classroom/packages/infrastructure/DB"
	controller "classroom/packages/presentation/api/http/controllers"
	RequestBody "classroom/packages/presentation/data/request"
	ResponseBody "classroom/packages/presentation/data/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

// @Summary		Create comment
// @ID				create-comment
// @Tags			comments
// @Accept			json
// @Produce		json
// @Param			id			path		int					true	"Post ID"
// @Param			body		body		requestbody.Comment	true	"Comment"
// @Success		201			{object}	responsebody.CommentCreated
// @Failure		400,401,404	{object}	responsebody.Error
// @Router			/posts/{id}/comments [post]
// @Security		BearerAuth
func Create(ctx echo.Context) error {
	postID, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	var body RequestBody.Comment

	if err := controller.Bind(ctx, &body); err != nil {
		return err
	}

	content, e := comment.ValidateContent(body.Content.String())
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	dto, e := DB.Database.CreateComment(controller.NewTargetedAction(ctx, postID), content)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusCreated, ResponseBody.CommentCreated{
		Message: "Comentário criado",
		Comment: dto,
	})
}

// @Summary		List comments
// @Description	Oldest comments first
// @ID				list-comments
// @Tags			comments
// @Produce		json
// @Param			id	path		int	true	"Post ID"
// @Success		200	{object}	responsebody.PostComments
// @Failure		404	{object}	responsebody.Error
// @Router			/posts/{id}/comments [get]
func List(ctx echo.Context) error {
	postID, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	comments, e := DB.Database.GetPostComments(postID)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.PostComments{
		PostID:   postID,
		Comments: comments,
	})
}

// @Summary		Delete comment
// @Description	Comment can be deleted by it's author or by author of the post
// @ID				delete-comment
// @Tags			comments
// @Produce		json
// @Param			id			path		int	true	"Comment ID"
// @Success		200			{object}	responsebody.Message
// @Failure		401,403,404	{object}	responsebody.Error
// @Router			/comments/{id} [delete]
// @Security		BearerAuth
func Delete(ctx echo.Context) error {
	id, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	if e := DB.Database.DeleteComment(controller.NewTargetedAction(ctx, id)); e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.Message{Message: "Comentário excluído"})
}
