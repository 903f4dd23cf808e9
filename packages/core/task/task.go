package task

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/validation"
	"net/http"
	"strings"
)

type Status string

const (
	PendingStatus Status = "Pendente"
	DoneStatus    Status = "Concluída"
)

var Statuses = []string{string(PendingStatus), string(DoneStatus)}

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Description string  `json:"descricao"`
	Status      Status  `json:"status"`
	CreatedAt   string  `json:"data_criacao"`
	CompletedAt *string `json:"data_conclusao"`
}

func (t *Task) IsDone() bool {
	return t.Status == DoneStatus
}

type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pendentes"`
	Done    int `json:"concluidas"`
}

var ErrEmptyTitle = Error.NewStatusError(
	"O título da tarefa não pode estar vazio",
	http.StatusBadRequest,
)
var ErrNotFound = Error.NewStatusError(
	"Tarefa não encontrada",
	http.StatusNotFound,
)

func ValidateTitle(title string) (string, *Error.Status) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// Case-insensitive, "pendente" and "concluída" are both valid.
func ParseStatus(raw string) (Status, *Error.Status) {
	v, err := validation.Option(raw, Statuses)
	if err != nil {
		return "", err
	}
	return Status(v), nil
}
