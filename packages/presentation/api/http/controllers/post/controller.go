package postcontroller

import (
	"classroom/packages/common/config"
	"classroom/packages/core/post"
	"classroom/packages/infrastructure/DB"
	controller "classroom/packages/presentation/api/http/controllers"
	RequestBody "classroom/packages/presentation/data/request"
	ResponseBody "classroom/packages/presentation/data/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

// @Summary		Create post
// @ID				create-post
// @Tags			posts
// @Accept			json
// @Produce		json
// @Param			body	body		requestbody.Post	true	"Post"
// @Success		201		{object}	responsebody.PostCreated
// @Failure		400,401	{object}	responsebody.Error
// @Router			/posts [post]
// @Security		BearerAuth
func Create(ctx echo.Context) error {
	var body RequestBody.Post

	if err := controller.Bind(ctx, &body); err != nil {
		return err
	}

	title, content, err := post.Validate(body.Title.String(), body.Content.String())
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	dto, err := DB.Database.CreatePost(controller.NewBasicAction(ctx), title, content)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.JSON(http.StatusCreated, ResponseBody.PostCreated{
		Message: "Post criado",
		Post:    dto,
	})
}

// @Summary		List posts
// @Description	Newest posts first
// @ID				list-posts
// @Tags			posts
// @Produce		json
// @Param			page		query		int	false	"Page number"
// @Param			per_page	query		int	false	"Page size"
// @Success		200			{object}	responsebody.PostsPage
// @Failure		400			{object}	responsebody.Error
// @Router			/posts [get]
func List(ctx echo.Context) error {
	page, perPage, err := controller.ParsePagination(ctx, config.Posts.DefaultPageSize, config.Posts.MaxPageSize)
	if err != nil {
		return err
	}

	posts, total, e := DB.Database.GetPosts(page, perPage)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.PostsPage{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Posts:   posts,
	})
}

// @Summary		Search posts
// @Description	Case-insensitive search by title or content
// @ID				search-posts
// @Tags			posts
// @Produce		json
// @Param			q	query		string	true	"Search query"
// @Success		200	{array}		postdto.Full
// @Failure		400	{object}	responsebody.Error
// @Router			/posts/search [get]
func Search(ctx echo.Context) error {
	q, err := post.NormalizeQuery(ctx.QueryParam("q"))
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	posts, err := DB.Database.SearchPosts(q)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, posts)
}

// @Summary		Get post
// @ID				get-post
// @Tags			posts
// @Produce		json
// @Param			id	path		int	true	"Post ID"
// @Success		200	{object}	postdto.Full
// @Failure		404	{object}	responsebody.Error
// @Router			/posts/{id} [get]
func Get(ctx echo.Context) error {
	id, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	dto, e := DB.Database.GetPostByID(id)
	if e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, dto)
}

// @Summary		Update post
// @Description	Only author can update post. Invalid fields are ignored.
// @ID				update-post
// @Tags			posts
// @Accept			json
// @Produce		json
// @Param			id				path		int						true	"Post ID"
// @Param			body			body		requestbody.PostChanges	true	"Changes"
// @Success		200				{object}	responsebody.Message
// @Failure		400,401,403,404	{object}	responsebody.Error
// @Router			/posts/{id} [put]
// @Security		BearerAuth
func Update(ctx echo.Context) error {
	id, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	var body RequestBody.PostChanges

	if err := controller.Bind(ctx, &body); err != nil {
		return err
	}

	// Empty changes are rejected by repository after existence and ownership checks
	changes := post.NewChanges(body.Title.Ptr(), body.Content.Ptr())

	if e := DB.Database.UpdatePost(controller.NewTargetedAction(ctx, id), changes); e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.Message{Message: "Post atualizado"})
}

// @Summary		Delete post
// @Description	Only author can delete post. Comments are deleted as well.
// @ID				delete-post
// @Tags			posts
// @Produce		json
// @Param			id			path		int	true	"Post ID"
// @Success		200			{object}	responsebody.Message
// @Failure		401,403,404	{object}	responsebody.Error
// @Router			/posts/{id} [delete]
// @Security		BearerAuth
func Delete(ctx echo.Context) error {
	id, err := controller.ParseID(ctx, "id")
	if err != nil {
		return err
	}

	if e := DB.Database.DeletePost(controller.NewTargetedAction(ctx, id)); e != nil {
		return controller.ConvertErrorStatusToHTTP(e)
	}

	return ctx.JSON(http.StatusOK, ResponseBody.Message{Message: "Post excluído"})
}
