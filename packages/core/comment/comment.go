package comment

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strings"
)

var ErrEmptyContent = Error.NewStatusError(
	"Conteúdo do comentário é obrigatório",
	http.StatusBadRequest,
)
var ErrNotFound = Error.NewStatusError(
	"Comentário não encontrado",
	http.StatusNotFound,
)
var ErrDeleteForbidden = Error.NewStatusError(
	"Somente o autor do comentário ou o autor do post pode excluir",
	http.StatusForbidden,
)

func ValidateContent(content string) (string, *Error.Status) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
