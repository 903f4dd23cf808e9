package clienttable

import (
	Error "classroom/packages/common/errors"
	"classroom/packages/common/util"
	"classroom/packages/core/client"
	"strings"
)

const likeEscape = ` ESCAPE '\'`

func (m *Manager) NameStartsWith(letter string) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE nome LIKE ?`+likeEscape+` ORDER BY nome;`, util.StartsWith(strings.TrimSpace(letter)))
}

func (m *Manager) NameContains(s string) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE nome LIKE ?`+likeEscape+` ORDER BY nome;`, util.Contains(strings.TrimSpace(s)))
}

// Domain may be specified either with or without leading '@'.
func (m *Manager) EmailDomain(domain string) ([]*client.Client, *Error.Status) {
	domain = "@" + strings.TrimPrefix(strings.TrimSpace(domain), "@")
	return m.collect(`WHERE email LIKE ?`+likeEscape+` ORDER BY nome;`, util.EndsWith(domain))
}

func (m *Manager) ByCity(city string) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE cidade = ? ORDER BY nome;`, strings.TrimSpace(city))
}

func (m *Manager) ByActive(active bool) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE ativo = ? ORDER BY nome;`, active)
}

func (m *Manager) ByCriteria(c *client.Criteria) ([]*client.Client, *Error.Status) {
	sql := `WHERE 1=1`
	args := []any{}

	if c.Cidade != nil {
		sql += ` AND cidade = ?`
		args = append(args, strings.TrimSpace(*c.Cidade))
	}
	if c.Ativo != nil {
		sql += ` AND ativo = ?`
		args = append(args, *c.Ativo)
	}

	return m.collect(sql+` ORDER BY nome;`, args...)
}

func (m *Manager) InCities(cities []string) ([]*client.Client, *Error.Status) {
	if len(cities) == 0 {
		return []*client.Client{}, nil
	}

	placeholders := make([]string, len(cities))
	args := make([]any, len(cities))
	for i, city := range cities {
		placeholders[i] = "?"
		args[i] = strings.TrimSpace(city)
	}

	return m.collect(`WHERE cidade IN (`+strings.Join(placeholders, ", ")+`) ORDER BY cidade, nome;`, args...)
}

func (m *Manager) NameStartsWithOrCity(letter string, city string) ([]*client.Client, *Error.Status) {
	return m.collect(
		`WHERE nome LIKE ?`+likeEscape+` OR cidade = ? ORDER BY nome;`,
		util.StartsWith(strings.TrimSpace(letter)), strings.TrimSpace(city),
	)
}

func (m *Manager) NameMinLength(n int) ([]*client.Client, *Error.Status) {
	return m.collect(`WHERE length(nome) >= ? ORDER BY length(nome) DESC, nome;`, n)
}

func (m *Manager) WithPhone(hasPhone bool) ([]*client.Client, *Error.Status) {
	if hasPhone {
		return m.collect(`WHERE telefone IS NOT NULL ORDER BY nome;`)
	}
	return m.collect(`WHERE telefone IS NULL ORDER BY nome;`)
}

var orderClauses = map[client.Order]string{
	client.OrderByName:         `ORDER BY nome ASC;`,
	client.OrderByNameDesc:     `ORDER BY nome DESC;`,
	client.OrderByCityThenName: `ORDER BY cidade ASC, nome ASC;`,
	client.OrderByRecent:       `ORDER BY created_at DESC, id DESC;`,
}

func (m *Manager) Sorted(order client.Order) ([]*client.Client, *Error.Status) {
	clause, ok := orderClauses[order]
	if !ok {
		return nil, client.ErrInvalidOrder
	}
	return m.collect(clause)
}
