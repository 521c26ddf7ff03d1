package domain

import (
	"github.com/allisson/panvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the vault key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidKeyEncoding indicates the vault key is not valid hex.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid key encoding")

	// ErrVaultKeyNotSet indicates no vault key was configured.
	ErrVaultKeyNotSet = errors.Wrap(errors.ErrInvalidInput, "vault key not set")

	// ErrIntegrityCheckFailed indicates an encrypted PAN could not be authenticated.
	//
	// Returned for a bad tag, a wrong key, a truncated or malformed blob, or invalid
	// base64. The specific cause is not disclosed.
	ErrIntegrityCheckFailed = errors.Wrap(errors.ErrIntegrity, "encrypted pan failed authentication")
)
