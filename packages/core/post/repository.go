package post

import (
	Error "classroom/packages/common/errors"
	ActionDTO "classroom/packages/core/action/DTO"
	PostDTO "classroom/packages/core/post/DTO"
)

type Repository interface {
	creator
	seeker
	updater
	deleter
}

type creator interface {
	// Title and content must be validated via Validate.
	CreatePost(act *ActionDTO.Basic, title string, content string) (*PostDTO.Basic, *Error.Status)
}

type seeker interface {
	GetPostByID(id int64) (*PostDTO.Full, *Error.Status)

	// Returns requested page of posts (newest first) and total amount of posts.
	GetPosts(page int, pageSize int) ([]*PostDTO.Full, int, *Error.Status)

	// Case-insensitive search by title or content.
	SearchPosts(query string) ([]*PostDTO.Full, *Error.Status)
}

type updater interface {
	// Only post author can update it.
	UpdatePost(act *ActionDTO.Targeted, changes *PostDTO.Changes) *Error.Status
}

type deleter interface {
	// Only post author can delete it. Comments are removed as well.
	DeletePost(act *ActionDTO.Targeted) *Error.Status
}
