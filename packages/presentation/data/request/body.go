package requestbody

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

/*
   Validation done in this package is related to transport layer only:
   it checks if required values are present. Everything else
   (lengths, formats) is validated by core packages.
*/

type Validator interface {
	Validate() *Error.Status
}

var ErrMissingCredentials = Error.NewStatusError(
	"Email e senha são obrigatórios",
	http.StatusBadRequest,
)

// Text field accepts any JSON value. Values of other types than string
// are decoded as empty string, so they fail the same validation as missing ones.
type Text string

func (t *Text) UnmarshalJSON(raw []byte) error {
	*t = ""

	if len(raw) == 0 || raw[0] != '"' {
		return nil
	}

	var s string
	if err := jsoniter.Unmarshal(raw, &s); err != nil {
		return err
	}
	*t = Text(s)

	return nil
}

func (t Text) String() string {
	return string(t)
}

// Returns nil if t is nil.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func isBlank(s Text) bool {
	return strings.TrimSpace(string(s)) == ""
}

type Registration struct {
	Nome  Text `json:"nome" example:"Ana Souza"`
	Email Text `json:"email" example:"ana@example.com"`
	Senha Text `json:"senha" example:"segredo123"`
}

type Login struct {
	Email Text `json:"email" example:"ana@example.com"`
	Senha Text `json:"senha" example:"segredo123"`
}

func (b *Login) Validate() *Error.Status {
	if isBlank(b.Email) || b.Senha == "" {
		return ErrMissingCredentials
	}
	return nil
}

type Post struct {
	Title   Text `json:"title" example:"Primeiro post"`
	Content Text `json:"content" example:"Conteúdo do post"`
}

// Nil field means that it wasn't present in request.
type PostChanges struct {
	Title   *Text `json:"title,omitempty" example:"Novo título"`
	Content *Text `json:"content,omitempty" example:"Novo conteúdo"`
}

type Comment struct {
	Content Text `json:"content" example:"Ótimo post!"`
}
