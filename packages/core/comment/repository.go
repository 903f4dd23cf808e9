package comment

import (
	Error "classroom/packages/common/errors"
	ActionDTO "classroom/packages/core/action/DTO"
	CommentDTO "classroom/packages/core/comment/DTO"
)

type Repository interface {
	creator
	seeker
	deleter
}

type creator interface {
	// act.TargetID is post id.
	CreateComment(act *ActionDTO.Targeted, content string) (*CommentDTO.Basic, *Error.Status)
}

type seeker interface {
	// Returns comments of the post (oldest first).
	GetPostComments(postID int64) ([]*CommentDTO.Full, *Error.Status)
}

type deleter interface {
	// Comment can be deleted either by it's author or by author of the post.
	// act.TargetID is comment id.
	DeleteComment(act *ActionDTO.Targeted) *Error.Status
}
