package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"classroom/packages/infrastructure/DB/sqlite/transaction"
)

func newInsertQuery(data *client.New, onConflict string) *query.Query {
	return query.New(
		`INSERT INTO clients (nome, email, telefone, cidade, ativo, created_at) VALUES (?, ?, ?, ?, ?, ?)`+onConflict+`;`,
		data.Nome,
		data.Email,
		nullable(data.Telefone),
		nullable(data.Cidade),
		!data.Inactive,
		util.Timestamp(),
	)
}

func (m *Manager) CreateClient(data *client.New) (int64, *Error.Status) {
	if err := data.Normalize(); err != nil {
		return 0, err
	}

	id, err := executor.Insert(newInsertQuery(data, ""))
	if err != nil {
		if err == Error.StatusConflict {
			return 0, client.ErrEmailInUse
		}
		return 0, err
	}

	return id, nil
}

func (m *Manager) CreateClients(batch []*client.New) (int, *Error.Status) {
	queries := make([]*query.Query, 0, len(batch))

	for _, raw := range batch {
		if raw == nil {
			continue
		}

		data := *raw
		if err := data.Normalize(); err != nil {
			continue
		}

		queries = append(queries, newInsertQuery(&data, ` ON CONFLICT(email) DO NOTHING`))
	}

	if len(queries) == 0 {
		return 0, nil
	}

	inserted, err := transaction.New(queries...).Exec()
	if err != nil {
		return 0, err
	}

	return int(inserted), nil
}

func (m *Manager) SeedClients() (int, *Error.Status) {
	return m.CreateClients(client.Samples)
}
