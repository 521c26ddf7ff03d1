// Package service provides the cryptographic services of the vault: the AEAD ciphers
// (AES-256-GCM, ChaCha20-Poly1305) and the PAN cipher built on top of them.
package service

import (
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	// The nonce is generated internally for every call.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes.
	NonceSize() int

	// Overhead returns the authentication tag length in bytes.
	Overhead() int
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// PANCipher encrypts and decrypts primary account numbers.
//
// Implementations never accept a caller-supplied nonce and never return
// unauthenticated plaintext.
type PANCipher interface {
	// Encrypt seals pan under the vault key with a fresh random nonce.
	Encrypt(pan []byte) (cryptoDomain.EncryptedPAN, error)

	// Decrypt authenticates and opens blob. Any failure yields
	// cryptoDomain.ErrIntegrityCheckFailed.
	Decrypt(blob cryptoDomain.EncryptedPAN) ([]byte, error)
}
