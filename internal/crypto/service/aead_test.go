package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
)

func newKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewAEAD_InvalidKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		key := make([]byte, size)

		aesCipher, err := NewAESGCM(key)
		assert.Error(t, err)
		assert.Nil(t, aesCipher)

		chachaCipher, err := NewChaCha20Poly1305(key)
		assert.Error(t, err)
		assert.Nil(t, chachaCipher)
	}
}

func TestAEAD_EncryptDecrypt(t *testing.T) {
	manager := NewAEADManager()

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(alg.String(), func(t *testing.T) {
			cipher, err := manager.CreateCipher(newKey(t), alg)
			require.NoError(t, err)
			assert.Equal(t, 12, cipher.NonceSize())
			assert.Equal(t, 16, cipher.Overhead())

			t.Run("round trip with AAD", func(t *testing.T) {
				plaintext := []byte("4111111111111111")
				aad := []byte("context")

				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				assert.Len(t, nonce, cipher.NonceSize())
				assert.Len(t, ciphertext, len(plaintext)+cipher.Overhead())

				decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			})

			t.Run("wrong AAD fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt([]byte("data"), []byte("a"))
				require.NoError(t, err)

				_, err = cipher.Decrypt(ciphertext, nonce, []byte("b"))
				assert.Error(t, err)
			})

			t.Run("short nonce fails without panic", func(t *testing.T) {
				ciphertext, _, err := cipher.Encrypt([]byte("data"), nil)
				require.NoError(t, err)

				assert.NotPanics(t, func() {
					_, err = cipher.Decrypt(ciphertext, []byte{1, 2, 3}, nil)
				})
				assert.Error(t, err)
			})

			t.Run("distinct nonces", func(t *testing.T) {
				_, n1, err := cipher.Encrypt([]byte("same"), nil)
				require.NoError(t, err)
				_, n2, err := cipher.Encrypt([]byte("same"), nil)
				require.NoError(t, err)
				assert.NotEqual(t, n1, n2)
			})
		})
	}
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()

	t.Run("Success_AESGCM", func(t *testing.T) {
		cipher, err := manager.CreateCipher(newKey(t), cryptoDomain.AESGCM)
		require.NoError(t, err)
		assert.IsType(t, &AESGCMCipher{}, cipher)
	})

	t.Run("Success_ChaCha20", func(t *testing.T) {
		cipher, err := manager.CreateCipher(newKey(t), cryptoDomain.ChaCha20)
		require.NoError(t, err)
		assert.IsType(t, &ChaCha20Poly1305Cipher{}, cipher)
	})

	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		cipher, err := manager.CreateCipher(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
		assert.Nil(t, cipher)
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		cipher, err := manager.CreateCipher(newKey(t), cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
		assert.Nil(t, cipher)
	})
}
