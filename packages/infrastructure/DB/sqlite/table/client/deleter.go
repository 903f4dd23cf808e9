package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"strings"
)

func (m *Manager) DeleteClient(id int64) *Error.Status {
	return executor.AffectedOrNotFound(
		query.New(`DELETE FROM clients WHERE id = ?;`, id),
		client.ErrNotFound,
	)
}

func (m *Manager) DeleteClientByEmail(email string) *Error.Status {
	return executor.AffectedOrNotFound(
		query.New(`DELETE FROM clients WHERE email = ?;`, strings.TrimSpace(email)),
		client.ErrNotFound,
	)
}

func (m *Manager) ClearClients() (int, *Error.Status) {
	n, err := executor.Affected(query.New(`DELETE FROM clients;`))
	return int(n), err
}
