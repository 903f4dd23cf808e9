package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestValidate(t *testing.T) {
	title, content, err := Validate("  Olá  ", "  conteúdo  ")
	require.Nil(t, err)
	assert.Equal(t, "Olá", title)
	assert.Equal(t, "conteúdo", content)

	_, _, err = Validate("ab", "conteúdo")
	assert.Equal(t, ErrInvalidTitle, err)

	_, _, err = Validate("abc", "    abcd    ")
	assert.Equal(t, ErrInvalidContent, err)
}

func TestNewChanges(t *testing.T) {
	t.Run("only valid fields kept", func(t *testing.T) {
		changes := NewChanges(ptr("no"), ptr(" novo conteúdo "))
		assert.Nil(t, changes.Title)
		require.NotNil(t, changes.Content)
		assert.Equal(t, "novo conteúdo", *changes.Content)
		assert.False(t, changes.IsEmpty())
	})

	t.Run("nothing valid", func(t *testing.T) {
		changes := NewChanges(ptr("no"), ptr("abc"))
		require.NotNil(t, changes)
		assert.True(t, changes.IsEmpty())

		assert.True(t, NewChanges(nil, nil).IsEmpty())
	})
}

func TestNormalizeQuery(t *testing.T) {
	q, err := NormalizeQuery("  go ")
	require.Nil(t, err)
	assert.Equal(t, "go", q)

	_, err = NormalizeQuery("   ")
	assert.Equal(t, ErrEmptyQuery, err)
}
