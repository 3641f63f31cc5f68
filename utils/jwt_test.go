package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "42", "Siti", "siti", "patient", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "Siti", claims.Name)
	assert.Equal(t, "patient", claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, err := GenerateToken(secret, "42", "", "", "patient", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(secret, expired)
	assert.Error(t, err)

	other, err := GenerateToken([]byte("other"), "42", "", "", "patient", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken(secret, other)
	assert.Error(t, err)

	noSubject, err := GenerateToken(secret, "", "", "", "patient", time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken(secret, noSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken(secret, "not-a-jwt")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
