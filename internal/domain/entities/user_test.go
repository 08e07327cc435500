package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser("Jonas Doe", "user@example.com", "password123")

	assert.False(t, user.Active)
	assert.Empty(t, user.VerificationToken)
	assert.True(t, user.VerificationTokenExpires.IsZero())
	assert.False(t, user.CreatedAt.IsZero())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{"valid", NewUser("Jonas", "user@example.com", "password123"), false},
		{"missing name", NewUser("", "user@example.com", "password123"), true},
		{"missing email", NewUser("Jonas", "", "password123"), true},
		{"missing password", NewUser("Jonas", "user@example.com", ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	user := NewUser("Jonas", "user@example.com", "password123")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, user.CheckPassword("password123"))
	assert.ErrorIs(t, user.CheckPassword("password124"), ErrInvalidCredentials)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a := NewUser("A", "a@example.com", "password123")
	b := NewUser("B", "b@example.com", "password123")
	require.NoError(t, a.HashPassword())
	require.NoError(t, b.HashPassword())

	assert.NotEqual(t, a.Password, b.Password)
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	user := NewUser("Jonas", "user@example.com", "password123")
	user.Password = "not-a-bcrypt-hash"

	assert.ErrorIs(t, user.CheckPassword("password123"), ErrCorruptCredential)
}

func TestBeginVerification_And_MarkAsVerified(t *testing.T) {
	user := NewUser("Jonas", "user@example.com", "password123")

	token, err := GenerateVerificationToken()
	require.NoError(t, err)
	user.BeginVerification(token, time.Now().Add(24*time.Hour))

	assert.False(t, user.Active)
	assert.Equal(t, token, user.VerificationToken)
	assert.False(t, user.VerificationTokenExpires.IsZero())

	user.MarkAsVerified()

	assert.True(t, user.Active)
	assert.Empty(t, user.VerificationToken)
	assert.True(t, user.VerificationTokenExpires.IsZero())
}

func TestGenerateVerificationToken(t *testing.T) {
	a, err := GenerateVerificationToken()
	require.NoError(t, err)
	b, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.Len(t, a, 40)
	assert.Regexp(t, "^[0-9a-f]+$", a)
	assert.NotEqual(t, a, b)
}
