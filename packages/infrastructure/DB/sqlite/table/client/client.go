package clienttable

import (
	"classroom/packages/core/client"
	"classroom/packages/infrastructure/DB/sqlite/executor"
)

type Manager struct {
	//
}

func NewManager() *Manager {
	return new(Manager)
}

const selectClient = `SELECT id, nome, email, telefone, cidade, ativo, created_at, updated_at FROM clients `

func scanClient(s executor.Scanner) (*client.Client, error) {
	c := new(client.Client)
	err := s.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Cidade, &c.Ativo, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanGroup(s executor.Scanner) (client.Group, error) {
	var g client.Group
	err := s.Scan(&g.Key, &g.Total, &g.Ativos)
	return g, err
}

// Empty string is stored as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
