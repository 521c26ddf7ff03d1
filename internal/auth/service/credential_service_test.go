package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
)

func TestCredentialService_GenerateToken(t *testing.T) {
	svc, err := NewCredentialService("")
	require.NoError(t, err)

	plain1, hash1, err := svc.GenerateToken()
	require.NoError(t, err)
	plain2, hash2, err := svc.GenerateToken()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(plain1)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	assert.Contains(t, hash1, "$argon2id$")
	assert.NotEqual(t, plain1, plain2)
	assert.NotEqual(t, hash1, hash2)
	assert.NotContains(t, hash1, plain1)
}

func TestCredentialService_Authenticate(t *testing.T) {
	generator, err := NewCredentialService("")
	require.NoError(t, err)
	plain, hash, err := generator.GenerateToken()
	require.NoError(t, err)

	svc, err := NewCredentialService(hash)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, svc.Authenticate(plain))
	})

	t.Run("Success_Cached", func(t *testing.T) {
		assert.NoError(t, svc.Authenticate(plain))
		assert.NoError(t, svc.Authenticate(plain))
	})

	t.Run("Error_WrongToken", func(t *testing.T) {
		assert.ErrorIs(t, svc.Authenticate(plain+"x"), authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_EmptyToken", func(t *testing.T) {
		assert.ErrorIs(t, svc.Authenticate(""), authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_HashNotSet", func(t *testing.T) {
		assert.ErrorIs(t, generator.Authenticate(plain), authDomain.ErrAuthTokenHashNotSet)
	})

	t.Run("Error_MalformedHash", func(t *testing.T) {
		broken, err := NewCredentialService("not-a-phc-string")
		require.NoError(t, err)
		assert.ErrorIs(t, broken.Authenticate(plain), authDomain.ErrInvalidCredentials)
	})
}
