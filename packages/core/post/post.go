package post

import (
	Error "classroom/packages/common/errors"
	PostDTO "classroom/packages/core/post/DTO"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLength   = 3
	MinContentLength = 5
)

var ErrInvalidTitle = Error.NewStatusError(
	"Title inválido (mínimo "+strconv.Itoa(MinTitleLength)+" caracteres)",
	http.StatusBadRequest,
)
var ErrInvalidContent = Error.NewStatusError(
	"Conteúdo inválido (mínimo "+strconv.Itoa(MinContentLength)+" caracteres)",
	http.StatusBadRequest,
)
var ErrNothingToUpdate = Error.NewStatusError(
	"Nada para atualizar (title mínimo "+strconv.Itoa(MinTitleLength)+
		" chars, content mínimo "+strconv.Itoa(MinContentLength)+" chars)",
	http.StatusBadRequest,
)
var ErrNotFound = Error.NewStatusError(
	"Post não encontrado",
	http.StatusNotFound,
)
var ErrEditForbidden = Error.NewStatusError(
	"Apenas o autor pode editar este post",
	http.StatusForbidden,
)
var ErrDeleteForbidden = Error.NewStatusError(
	"Apenas o autor pode excluir este post",
	http.StatusForbidden,
)
var ErrEmptyQuery = Error.NewStatusError(
	"Parâmetro 'q' é obrigatório",
	http.StatusBadRequest,
)

func isLongEnough(s string, min int) bool {
	return utf8.RuneCountInString(s) >= min
}

// Returns trimmed title and content or error if any of them is invalid.
func Validate(title string, content string) (string, string, *Error.Status) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if !isLongEnough(title, MinTitleLength) {
		return "", "", ErrInvalidTitle
	}
	if !isLongEnough(content, MinContentLength) {
		return "", "", ErrInvalidContent
	}

	return title, content, nil
}

// Builds changes from raw values, invalid values are silently dropped.
// Result may be empty, repository rejects it with ErrNothingToUpdate.
func NewChanges(title *string, content *string) *PostDTO.Changes {
	changes := new(PostDTO.Changes)

	if title != nil {
		if v := strings.TrimSpace(*title); isLongEnough(v, MinTitleLength) {
			changes.Title = &v
		}
	}
	if content != nil {
		if v := strings.TrimSpace(*content); isLongEnough(v, MinContentLength) {
			changes.Content = &v
		}
	}

	return changes
}

func NormalizeQuery(q string) (string, *Error.Status) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}
