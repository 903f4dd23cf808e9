package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	l := NewList()

	require.Nil(t, l.Add(" Arroz "))
	require.Nil(t, l.Add("Feijão"))
	require.Nil(t, l.Add("arroz"))
	assert.Equal(t, ErrEmptyItem, l.Add("   "))

	assert.Equal(t, []string{"Arroz", "Feijão", "arroz"}, l.Items())

	require.Nil(t, l.Remove("ARROZ"))
	assert.Equal(t, []string{"Feijão", "arroz"}, l.Items())
	assert.Equal(t, ErrItemNotFound, l.Remove("Leite"))

	items := l.Items()
	items[0] = "changed"
	assert.Equal(t, "Feijão", l.Items()[0])
	assert.Equal(t, 2, l.Len())
}
