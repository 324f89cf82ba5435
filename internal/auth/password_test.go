package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lordbaldwin1/jwt/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	// Salted: hashing the same password twice gives different outputs
	hash2, err := auth.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword_RandomPasswords(t *testing.T) {
	// Random distinct passwords never cross-verify
	passwords := make([]string, 5)
	hashes := make([]string, 5)
	for i := range passwords {
		passwords[i] = uuid.New().String()
		hash, err := auth.HashPassword(passwords[i])
		require.NoError(t, err)
		hashes[i] = hash
	}

	for i, password := range passwords {
		for j, hash := range hashes {
			assert.Equal(t, i == j, auth.CheckPassword(password, hash))
		}
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("correctpassword")
	require.NoError(t, err)

	emptyHash, err := auth.HashPassword("")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "matching password",
			password: "correctpassword",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty password against non-empty hash",
			password: "",
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty password against empty-password hash",
			password: "",
			hash:     emptyHash,
			want:     true,
		},
		{
			name:     "non-empty password against empty-password hash",
			password: "correctpassword",
			hash:     emptyHash,
			want:     false,
		},
		{
			name:     "malformed hash",
			password: "correctpassword",
			hash:     "not-a-bcrypt-hash",
			want:     false,
		},
		{
			name:     "empty hash",
			password: "correctpassword",
			hash:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.CheckPassword(tt.password, tt.hash))
		})
	}
}
