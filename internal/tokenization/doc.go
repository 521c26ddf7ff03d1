/*
Package tokenization implements the PAN vault: it exchanges a primary account number
for an opaque token, reverses the exchange on demand and records charges against a
token without touching the PAN.

# Architecture

The module follows Clean Architecture principles:
  - domain: token formats, PAN and amount rules, purchase records, errors
  - service: token generation (alphanumeric, hex, UUID, Luhn)
  - usecase: the vault operations and their metrics decorator
  - repository: mapping stores and purchase ledgers (bbolt, JSON file, PostgreSQL, MySQL, memory)
  - http: handlers and DTOs

# Security Model

Every PAN is sealed with a single vault key using AES-256-GCM or ChaCha20-Poly1305.
The stored blob is base64(nonce || ciphertext || tag); a blob that fails
authentication is reported as an integrity failure, never as a missing token.

Charges only check that the token exists. The PAN is never decrypted on that path.

# Basic Usage

	token, err := vault.Tokenize(ctx, authorized, "4111111111111111")

	pan, err := vault.Detokenize(ctx, authorized, token)

	receipt, err := vault.Charge(ctx, authorized, token, "49.99")

# Token Formats

  - alphanumeric: [A-Za-z0-9], 32 characters by default
  - hex: 16 random bytes hex encoded
  - uuid: UUIDv4
  - luhn: 19 digits with a valid Luhn check digit

Every format relies on the store's put-if-absent check: a colliding token is
regenerated a bounded number of times.
*/
package tokenization
