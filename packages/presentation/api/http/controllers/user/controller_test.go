package usercontroller

import (
	UserDTO "classroom/packages/core/user/DTO"
	"testing"

	"github.com/stretchr/testify/assert"
)

func profile(id int64, nome string, email string) *UserDTO.Profile {
	return &UserDTO.Profile{
		Public:    UserDTO.Public{ID: id, Nome: nome, Email: email},
		CreatedAt: "2025-01-01T00:00:00.000000Z",
	}
}

func TestWriteCSV(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		assert.Equal(t, csvHeader, writeCSV(nil))
	})

	t.Run("quotes names", func(t *testing.T) {
		got := writeCSV([]*UserDTO.Profile{
			profile(1, "Ana", "ana@example.com"),
			profile(2, `Bruno "Bru" Lima`, "bruno@example.com"),
		})

		assert.Equal(t,
			"id,nome,email,created_at\n"+
				`1,"Ana",ana@example.com,2025-01-01T00:00:00.000000Z`+"\n"+
				`2,"Bruno ""Bru"" Lima",bruno@example.com,2025-01-01T00:00:00.000000Z`,
			got,
		)
	})
}
