package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.GenerateToken(42, RoleDriver)
	require.NoError(t, err)

	subjectID, role, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), subjectID)
	assert.Equal(t, RoleDriver, role)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken(1, RoleUser)
	require.NoError(t, err)

	_, _, err = NewManager("secret-b").ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, _, err := NewManager("secret").ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
