// Package service provides token generation for the vault.
// Supports alphanumeric, hex, UUID and Luhn-valid numeric tokens.
package service

// TokenGenerator defines the interface for token generation.
//
// Generators draw from crypto/rand. Uniqueness against stored tokens is enforced by the
// mapping store, not by the generator.
type TokenGenerator interface {
	// Generate returns a fresh random token. An error means the entropy source failed.
	Generate() (string, error)

	// Validate reports whether token has the shape this generator produces.
	Validate(token string) error
}
