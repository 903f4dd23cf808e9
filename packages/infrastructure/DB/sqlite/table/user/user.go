package usertable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/user"
	UserDTO "classroom/packages/core/user/DTO"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"classroom/packages/infrastructure/auth/authn"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

func (m *Manager) CreateUser(reg *UserDTO.Registration) (*UserDTO.Basic, *Error.Status) {
	hash, err := authn.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	dto := &UserDTO.Basic{
		Nome:         reg.Nome,
		Email:        reg.Email,
		PasswordHash: hash,
		CreatedAt:    util.Timestamp(),
	}

	insertQuery := query.New(
		`INSERT INTO users (nome, email, senha_hash, created_at) VALUES (?, ?, ?, ?);`,
		dto.Nome, dto.Email, dto.PasswordHash, dto.CreatedAt,
	)

	id, err := executor.Insert(insertQuery)
	if err != nil {
		if err == Error.StatusConflict {
			return nil, user.ErrEmailInUse
		}
		return nil, err
	}

	dto.ID = id

	return dto, nil
}

const selectBasic = `SELECT id, nome, email, senha_hash, created_at FROM users `

func scanBasic(s executor.Scanner) (*UserDTO.Basic, error) {
	dto := new(UserDTO.Basic)
	err := s.Scan(&dto.ID, &dto.Nome, &dto.Email, &dto.PasswordHash, &dto.CreatedAt)
	return dto, err
}

func scanProfile(s executor.Scanner) (*UserDTO.Profile, error) {
	dto := new(UserDTO.Profile)
	err := s.Scan(&dto.ID, &dto.Nome, &dto.Email, &dto.CreatedAt)
	return dto, err
}

func (m *Manager) getUser(q *query.Query) (*UserDTO.Basic, *Error.Status) {
	dto, err := executor.Row(q, scanBasic)
	if err != nil {
		if err == Error.StatusNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (m *Manager) GetUserByID(id int64) (*UserDTO.Basic, *Error.Status) {
	return m.getUser(query.New(selectBasic+`WHERE id = ?;`, id))
}

func (m *Manager) GetUserByEmail(email string) (*UserDTO.Basic, *Error.Status) {
	return m.getUser(query.New(selectBasic+`WHERE email = ?;`, user.NormalizeEmail(email)))
}

func (m *Manager) SearchUsers(page int, pageSize int) ([]*UserDTO.Profile, int, *Error.Status) {
	total, err := executor.Count(query.New(`SELECT COUNT(*) FROM users;`))
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if offset < 0 || offset >= total {
		return []*UserDTO.Profile{}, total, nil
	}

	users, err := executor.Collect(
		query.New(
			`SELECT id, nome, email, created_at FROM users ORDER BY id DESC LIMIT ? OFFSET ?;`,
			pageSize, offset,
		),
		scanProfile,
	)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (m *Manager) ExportUsers() ([]*UserDTO.Profile, *Error.Status) {
	return executor.Collect(
		query.New(`SELECT id, nome, email, created_at FROM users ORDER BY id;`),
		scanProfile,
	)
}
