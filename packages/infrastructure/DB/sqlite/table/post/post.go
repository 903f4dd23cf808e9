package posttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	ActionDTO "classroom/packages/core/action/DTO"
	"classroom/packages/core/post"
	PostDTO "classroom/packages/core/post/DTO"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"classroom/packages/infrastructure/cache"
	"strings"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

func (m *Manager) CreatePost(act *ActionDTO.Basic, title string, content string) (*PostDTO.Basic, *Error.Status) {
	if err := act.ValidateRequesterID(); err != nil {
		return nil, err
	}

	dto := &PostDTO.Basic{
		AuthorID:  act.RequesterID,
		Title:     title,
		Content:   content,
		CreatedAt: util.Timestamp(),
	}

	id, err := executor.Insert(query.New(
		`INSERT INTO posts (author_id, title, content, created_at) VALUES (?, ?, ?, ?);`,
		dto.AuthorID, dto.Title, dto.Content, dto.CreatedAt,
	))
	if err != nil {
		return nil, err
	}

	dto.ID = id

	return dto, nil
}

const selectFull = `SELECT p.id, p.title, p.content, p.created_at, p.updated_at, p.author_id, u.nome
FROM posts p JOIN users u ON u.id = p.author_id `

func scanFull(s executor.Scanner) (*PostDTO.Full, error) {
	dto := new(PostDTO.Full)
	err := s.Scan(&dto.ID, &dto.Title, &dto.Content, &dto.CreatedAt, &dto.UpdatedAt, &dto.AuthorID, &dto.AuthorName)
	return dto, err
}

func (m *Manager) GetPostByID(id int64) (*PostDTO.Full, *Error.Status) {
	cacheKey := cache.PostKey(id)

	cached := new(PostDTO.Full)
	if cache.GetJSON(cacheKey, cached) {
		return cached, nil
	}

	dto, err := executor.Row(query.New(selectFull+`WHERE p.id = ?;`, id), scanFull)
	if err != nil {
		if err == Error.StatusNotFound {
			return nil, post.ErrNotFound
		}
		return nil, err
	}

	cache.SetJSON(cacheKey, dto)

	return dto, nil
}

func (m *Manager) GetPosts(page int, pageSize int) ([]*PostDTO.Full, int, *Error.Status) {
	total, err := executor.Count(query.New(`SELECT COUNT(*) FROM posts;`))
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if offset < 0 || offset >= total {
		return []*PostDTO.Full{}, total, nil
	}

	posts, err := executor.Collect(
		query.New(
			selectFull+`ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?;`,
			pageSize, offset,
		),
		scanFull,
	)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// LIKE is case-insensitive for ASCII letters only.
func (m *Manager) SearchPosts(q string) ([]*PostDTO.Full, *Error.Status) {
	pattern := util.Contains(q)

	return executor.Collect(
		query.New(
			selectFull+`WHERE p.title LIKE ? ESCAPE '\' OR p.content LIKE ? ESCAPE '\'
			ORDER BY p.created_at DESC, p.id DESC;`,
			pattern, pattern,
		),
		scanFull,
	)
}

// Returns id of post author.
func (m *Manager) GetPostAuthorID(id int64) (int64, *Error.Status) {
	authorID, err := executor.Row(
		query.New(`SELECT author_id FROM posts WHERE id = ?;`, id),
		func(s executor.Scanner) (int64, error) {
			var v int64
			err := s.Scan(&v)
			return v, err
		},
	)
	if err != nil {
		if err == Error.StatusNotFound {
			return 0, post.ErrNotFound
		}
		return 0, err
	}
	return authorID, nil
}

func (m *Manager) UpdatePost(act *ActionDTO.Targeted, changes *PostDTO.Changes) *Error.Status {
	if err := act.ValidateRequesterID(); err != nil {
		return err
	}

	authorID, err := m.GetPostAuthorID(act.TargetID)
	if err != nil {
		return err
	}
	if authorID != act.RequesterID {
		return post.ErrEditForbidden
	}

	sets := []string{}
	args := []any{}

	if changes.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *changes.Content)
	}
	if len(sets) == 0 {
		return post.ErrNothingToUpdate
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, util.Timestamp(), act.TargetID)

	updateQuery := query.New(
		`UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?;`,
		args...,
	)

	return cache.Client.DeleteOnNoError(
		executor.AffectedOrNotFound(updateQuery, post.ErrNotFound),
		cache.PostKey(act.TargetID),
	)
}

func (m *Manager) DeletePost(act *ActionDTO.Targeted) *Error.Status {
	if err := act.ValidateRequesterID(); err != nil {
		return err
	}

	authorID, err := m.GetPostAuthorID(act.TargetID)
	if err != nil {
		return err
	}
	if authorID != act.RequesterID {
		return post.ErrDeleteForbidden
	}

	return cache.Client.DeleteOnNoError(
		executor.AffectedOrNotFound(
			query.New(`DELETE FROM posts WHERE id = ?;`, act.TargetID),
			post.ErrNotFound,
		),
		cache.PostKey(act.TargetID),
	)
}
