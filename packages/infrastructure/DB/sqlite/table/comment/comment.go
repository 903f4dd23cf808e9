package commenttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	ActionDTO "classroom/packages/core/action/DTO"
	"classroom/packages/core/comment"
	CommentDTO "classroom/packages/core/comment/DTO"
	"classroom/packages/core/post"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	PostTable "classroom/packages/infrastructure/DB/sqlite/table/post"
)

type Manager struct {
	post *PostTable.Manager
}

func NewManager(post *PostTable.Manager) *Manager {
	return &Manager{
		post: post,
	}
}

func (m *Manager) CreateComment(act *ActionDTO.Targeted, content string) (*CommentDTO.Basic, *Error.Status) {
	if err := act.ValidateRequesterID(); err != nil {
		return nil, err
	}

	if _, err := m.post.GetPostAuthorID(act.TargetID); err != nil {
		return nil, err
	}

	dto := &CommentDTO.Basic{
		PostID:    act.TargetID,
		AuthorID:  act.RequesterID,
		Content:   content,
		CreatedAt: util.Timestamp(),
	}

	id, err := executor.Insert(query.New(
		`INSERT INTO comments (post_id, author_id, content, created_at) VALUES (?, ?, ?, ?);`,
		dto.PostID, dto.AuthorID, dto.Content, dto.CreatedAt,
	))
	if err != nil {
		// Post was deleted after existence check
		if err == Error.StatusNotFound {
			return nil, post.ErrNotFound
		}
		return nil, err
	}

	dto.ID = id

	return dto, nil
}

func scanFull(s executor.Scanner) (*CommentDTO.Full, error) {
	dto := new(CommentDTO.Full)
	err := s.Scan(&dto.ID, &dto.Content, &dto.CreatedAt, &dto.AuthorID, &dto.AuthorName)
	return dto, err
}

func (m *Manager) GetPostComments(postID int64) ([]*CommentDTO.Full, *Error.Status) {
	if _, err := m.post.GetPostAuthorID(postID); err != nil {
		return nil, err
	}

	return executor.Collect(
		query.New(
			`SELECT c.id, c.content, c.created_at, c.author_id, u.nome
			FROM comments c JOIN users u ON u.id = c.author_id
			WHERE c.post_id = ?
			ORDER BY c.created_at ASC, c.id ASC;`,
			postID,
		),
		scanFull,
	)
}

type ownership struct {
	commentAuthorID int64
	postAuthorID    int64
}

func (m *Manager) DeleteComment(act *ActionDTO.Targeted) *Error.Status {
	if err := act.ValidateRequesterID(); err != nil {
		return err
	}

	owners, err := executor.Row(
		query.New(
			`SELECT c.author_id, p.author_id
			FROM comments c JOIN posts p ON p.id = c.post_id
			WHERE c.id = ?;`,
			act.TargetID,
		),
		func(s executor.Scanner) (*ownership, error) {
			o := new(ownership)
			err := s.Scan(&o.commentAuthorID, &o.postAuthorID)
			return o, err
		},
	)
	if err != nil {
		if err == Error.StatusNotFound {
			return comment.ErrNotFound
		}
		return err
	}

	if act.RequesterID != owners.commentAuthorID && act.RequesterID != owners.postAuthorID {
		return comment.ErrDeleteForbidden
	}

	return executor.AffectedOrNotFound(
		query.New(`DELETE FROM comments WHERE id = ?;`, act.TargetID),
		comment.ErrNotFound,
	)
}
