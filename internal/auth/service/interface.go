// Package service provides technical services for merchant authentication and
// audit log signing.
package service

import (
	authDomain "github.com/allisson/panvault/internal/auth/domain"
)

// CredentialService generates and checks the merchant bearer token.
// Only an Argon2id hash of the token is ever configured or stored.
type CredentialService interface {
	// GenerateToken creates a new random merchant token and its Argon2id hash.
	// The plain token is shown once and never persisted.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// Authenticate checks plainToken against the configured hash.
	// Returns ErrInvalidCredentials on mismatch.
	Authenticate(plainToken string) error
}

// AuditSigner signs and verifies audit log entries with a key derived from the vault key.
type AuditSigner interface {
	// Sign returns the HMAC-SHA256 signature of the entry.
	Sign(log *authDomain.AuditLog) []byte

	// Verify returns ErrSignatureInvalid when the entry's signature does not match.
	Verify(log *authDomain.AuditLog) error
}
