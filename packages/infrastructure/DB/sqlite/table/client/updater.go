package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"strings"
)

func (m *Manager) UpdateClient(id int64, changes *client.Changes) *Error.Status {
	if err := changes.Normalize(); err != nil {
		return err
	}

	sets := []string{}
	args := []any{}

	if changes.Nome != nil {
		sets = append(sets, "nome = ?")
		args = append(args, *changes.Nome)
	}
	if changes.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *changes.Email)
	}
	if changes.Telefone != nil {
		sets = append(sets, "telefone = ?")
		args = append(args, nullable(*changes.Telefone))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, util.Timestamp(), id)

	err := executor.AffectedOrNotFound(
		query.New(`UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ?;`, args...),
		client.ErrNotFound,
	)
	if err == Error.StatusConflict {
		return client.ErrEmailInUse
	}

	return err
}
