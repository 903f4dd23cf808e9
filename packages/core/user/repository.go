package user

import (
	Error "classroom/packages/common/errors"
	UserDTO "classroom/packages/core/user/DTO"
)

type Repository interface {
	creator
	seeker
}

type creator interface {
	// Registration must be created via NewRegistration.
	// Password is hashed before it's stored.
	CreateUser(reg *UserDTO.Registration) (*UserDTO.Basic, *Error.Status)
}

type seeker interface {
	GetUserByID(id int64) (*UserDTO.Basic, *Error.Status)

	GetUserByEmail(email string) (*UserDTO.Basic, *Error.Status)

	// Returns requested page of users (newest first) and total amount of users.
	SearchUsers(page int, pageSize int) ([]*UserDTO.Profile, int, *Error.Status)

	// Returns all users ordered by id.
	ExportUsers() ([]*UserDTO.Profile, *Error.Status)
}
