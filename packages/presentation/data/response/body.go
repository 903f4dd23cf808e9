package responsebody

import (
	CommentDTO "classroom/packages/core/comment/DTO"
	PostDTO "classroom/packages/core/post/DTO"
	UserDTO "classroom/packages/core/user/DTO"
)

type Message struct {
	Message string `json:"mensagem" example:"Post atualizado"`
}

type Error struct {
	Error string `json:"erro" example:"Post não encontrado"`
}

type Health struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

type Auth struct {
	Message string          `json:"mensagem" example:"Login bem-sucedido"`
	User    *UserDTO.Public `json:"usuario"`
	Token   string          `json:"token"`
}

type PostCreated struct {
	Message string         `json:"mensagem" example:"Post criado"`
	Post    *PostDTO.Basic `json:"post"`
}

type PostsPage struct {
	Page    int             `json:"page" example:"1"`
	PerPage int             `json:"per_page" example:"10"`
	Total   int             `json:"total" example:"42"`
	Posts   []*PostDTO.Full `json:"posts"`
}

type CommentCreated struct {
	Message string            `json:"mensagem" example:"Comentário criado"`
	Comment *CommentDTO.Basic `json:"comment"`
}

type PostComments struct {
	PostID   int64              `json:"post_id" example:"1"`
	Comments []*CommentDTO.Full `json:"comments"`
}

type UsersPage struct {
	Page    int                `json:"page" example:"1"`
	PerPage int                `json:"per_page" example:"10"`
	Total   int                `json:"total" example:"42"`
	Users   []*UserDTO.Profile `json:"users"`
}
