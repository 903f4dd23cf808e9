package authn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCompareHashAndPassword(t *testing.T) {
	HashCost = bcrypt.MinCost

	password := "testPassword123"

	hash, err := HashPassword(password)
	require.Nil(t, err)
	assert.NotEqual(t, password, hash)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
	}{
		{"valid password comparison", hash, password, false},
		{"invalid password comparison", hash, "wrongPassword", true},
		{"empty password with valid hash", hash, "", true},
		{"empty hash with password", "", password, true},
		{"both empty strings", "", "", true},
		{"invalid hash format", "invalid-hash", password, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHashAndPassword(tt.hash, tt.password)
			if tt.wantErr {
				assert.Equal(t, InvalidAuthCredentials, err)
				assert.Equal(t, 401, err.Status())
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestLongPassword(t *testing.T) {
	HashCost = bcrypt.MinCost

	password := strings.Repeat("a", 80)

	hash, err := HashPassword(password)
	require.Nil(t, err)

	assert.Nil(t, CompareHashAndPassword(hash, password))
	// Differs only past the 72nd byte.
	assert.Equal(t, InvalidAuthCredentials, CompareHashAndPassword(hash, strings.Repeat("a", 79)+"b"))
}
