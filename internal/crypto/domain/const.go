// Package domain defines the cryptographic primitives of the vault: the algorithm
// selector, the process-wide vault key and the encrypted PAN blob layout.
package domain

// Algorithm represents the AEAD algorithm used to encrypt PANs.
//
// Both supported algorithms use a 256-bit key, a 12-byte nonce and a 16-byte tag.
// The nonce size is still read from the primitive at construction time.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. Preferred on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305. Preferred where AES is not hardware accelerated.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the required vault key length in bytes.
const KeySize = 32

// Validate checks if the algorithm is supported.
func (a Algorithm) Validate() error {
	switch a {
	case AESGCM, ChaCha20:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}
