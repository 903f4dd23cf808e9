package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestNewNormalize(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		n := &New{Nome: "  Ana Silva ", Email: " ana@email.com ", Telefone: " 11987654321 "}
		require.Nil(t, n.Normalize())
		assert.Equal(t, "Ana Silva", n.Nome)
		assert.Equal(t, "ana@email.com", n.Email)
		assert.Equal(t, "11987654321", n.Telefone)
	})

	cases := []struct {
		name     string
		data     New
		expected error
	}{
		{"missing name", New{Email: "ana@email.com"}, ErrMissingFields},
		{"missing email", New{Nome: "Ana"}, ErrMissingFields},
		{"short name", New{Nome: "Al", Email: "al@email.com"}, ErrInvalidName},
		{"bad email", New{Nome: "Ana", Email: "ana@email"}, ErrInvalidEmail},
		{"bad phone", New{Nome: "Ana", Email: "ana@email.com", Telefone: "123"}, ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.data
			assert.Equal(t, tc.expected, data.Normalize())
		})
	}
}

func TestChangesNormalize(t *testing.T) {
	assert.Equal(t, ErrNothingToUpdate, (&Changes{}).Normalize())

	c := &Changes{Email: ptr(" novo@email.com ")}
	require.Nil(t, c.Normalize())
	assert.Equal(t, "novo@email.com", *c.Email)

	assert.Equal(t, ErrInvalidPhone, (&Changes{Telefone: ptr("abc")}).Normalize())
	assert.Equal(t, ErrInvalidName, (&Changes{Nome: ptr(" ab ")}).Normalize())
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("NAME_DESC")
	require.Nil(t, err)
	assert.Equal(t, OrderByNameDesc, o)

	_, err = ParseOrder("age")
	assert.Equal(t, ErrInvalidOrder, err)
}

func TestSamples(t *testing.T) {
	require.Len(t, Samples, 15)

	cities := map[string]struct{}{}
	inactive := 0
	for _, s := range Samples {
		data := *s
		require.Nil(t, data.Normalize(), s.Nome)
		cities[s.Cidade] = struct{}{}
		if s.Inactive {
			inactive++
		}
	}

	assert.Len(t, cities, 8)
	assert.Equal(t, 3, inactive)
}
