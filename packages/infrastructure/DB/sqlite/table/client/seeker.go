package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"strings"
)

func (m *Manager) collect(sql string, args ...any) ([]*client.Client, *Error.Status) {
	return executor.Collect(query.New(selectClient+sql, args...), scanClient)
}

func (m *Manager) getClient(q *query.Query) (*client.Client, *Error.Status) {
	c, err := executor.Row(q, scanClient)
	if err != nil {
		if err == Error.StatusNotFound {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (m *Manager) GetClients() ([]*client.Client, *Error.Status) {
	return m.collect(`ORDER BY id;`)
}

func (m *Manager) GetClientByID(id int64) (*client.Client, *Error.Status) {
	return m.getClient(query.New(selectClient+`WHERE id = ?;`, id))
}

func (m *Manager) GetClientByEmail(email string) (*client.Client, *Error.Status) {
	return m.getClient(query.New(selectClient+`WHERE email = ?;`, strings.TrimSpace(email)))
}

func (m *Manager) GetClientsByName(nome string) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE nome LIKE ? ESCAPE '\' ORDER BY nome;`, util.Contains(strings.TrimSpace(nome)))
}

func (m *Manager) SearchClients(f *client.Filter) ([]*client.Client, *Error.Status) {
	conditions := []string{}
	args := []any{}

	add := func(column string, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		conditions = append(conditions, column+` LIKE ? ESCAPE '\'`)
		args = append(args, util.Contains(value))
	}

	add("nome", f.Nome)
	add("email", f.Email)
	add("telefone", f.Telefone)

	if len(conditions) == 0 {
		return m.GetClients()
	}

	return m.collect(`WHERE `+strings.Join(conditions, " AND ")+` ORDER BY id;`, args...)
}

func (m *Manager) CountClients() (int, *Error.Status) {
	return executor.Count(query.New(`SELECT COUNT(*) FROM clients;`))
}

func (m *Manager) GetClientStats() (*client.Stats, *Error.Status) {
	return executor.Row(
		query.New(
			`SELECT COUNT(*),
			COALESCE(SUM(ativo), 0),
			COALESCE(SUM(CASE WHEN telefone IS NOT NULL THEN 1 ELSE 0 END), 0),
			COUNT(DISTINCT cidade),
			MIN(created_at),
			MAX(created_at)
			FROM clients;`,
		),
		func(s executor.Scanner) (*client.Stats, error) {
			stats := new(client.Stats)

			err := s.Scan(
				&stats.Total,
				&stats.Ativos,
				&stats.ComTelefone,
				&stats.Cidades,
				&stats.PrimeiroCadastro,
				&stats.UltimoCadastro,
			)

			stats.Inativos = stats.Total - stats.Ativos
			stats.SemTelefone = stats.Total - stats.ComTelefone

			return stats, err
		},
	)
}
