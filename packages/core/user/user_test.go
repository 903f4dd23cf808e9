package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistration(t *testing.T) {
	reg, err := NewRegistration("  Ana ", "  Ana@Example.COM ", "123456")
	require.Nil(t, err)
	assert.Equal(t, "Ana", reg.Nome)
	assert.Equal(t, "ana@example.com", reg.Email)

	cases := []struct {
		name     string
		nome     string
		email    string
		password string
		expected error
	}{
		{"short name", " A ", "a@b.com", "123456", ErrInvalidName},
		{"bad email", "Ana", "ana@", "123456", ErrInvalidEmail},
		{"email with space", "Ana", "a na@b.com", "123456", ErrInvalidEmail},
		{"short password", "Ana", "a@b.com", "12345", ErrInvalidPassword},
		{"name checked first", "", "bad", "1", ErrInvalidName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistration(tc.nome, tc.email, tc.password)
			assert.Equal(t, tc.expected, err)
		})
	}
}
