package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
	"classroom/packages/infrastructure/DB/sqlite/query"
	"strings"
)

const activeSum = `COALESCE(SUM(CASE WHEN ativo = 1 THEN 1 ELSE 0 END), 0)`

func (m *Manager) CountByCity() ([]client.Group, *Error.Status) {
	return executor.Collect(
		query.New(
			`SELECT COALESCE(cidade, ''), COUNT(*) AS total, ` + activeSum + `
			FROM clients GROUP BY cidade ORDER BY total DESC, cidade;`,
		),
		scanGroup,
	)
}

func (m *Manager) CountByInitial() ([]client.Group, *Error.Status) {
	return executor.Collect(
		query.New(
			`SELECT substr(nome, 1, 1) AS letter, COUNT(*), ` + activeSum + `
			FROM clients GROUP BY letter ORDER BY letter;`,
		),
		scanGroup,
	)
}

func (m *Manager) CitiesWithAtLeast(n int) ([]client.Group, *Error.Status) {
	return executor.Collect(
		query.New(
			`SELECT COALESCE(cidade, ''), COUNT(*) AS total, `+activeSum+`
			FROM clients GROUP BY cidade HAVING COUNT(*) >= ? ORDER BY total DESC, cidade;`,
			n,
		),
		scanGroup,
	)
}

func (m *Manager) CountStartingWith(letter string) (int, *Error.Status) {
	return executor.Count(query.New(
		`SELECT COUNT(*) FROM clients WHERE nome LIKE ?`+likeEscape+`;`,
		util.StartsWith(strings.TrimSpace(letter)),
	))
}
