package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	authService "github.com/allisson/panvault/internal/auth/service"
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
)

// RunCreateVaultKey generates a random 32-byte vault key and prints it hex-encoded.
// The raw key is zeroed after encoding. Losing the key makes every stored PAN and
// every audit signature unrecoverable.
func RunCreateVaultKey(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate vault key: %w", err)
	}
	encoded := hex.EncodeToString(key)
	cryptoDomain.Zero(key)

	if format == "json" {
		return writeJSON(writer, map[string]string{"vault_key": encoded})
	}

	_, _ = fmt.Fprintln(writer, "# Vault Key Configuration")
	_, _ = fmt.Fprintln(writer, "# Copy this variable to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "VAULT_KEY=\"%s\"\n", encoded)
	return nil
}

// RunCreateAuthToken generates a merchant bearer token and its Argon2id hash.
// The server is configured with the hash only; the plain token goes to the merchant.
func RunCreateAuthToken(credentialService authService.CredentialService, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plainToken, tokenHash, err := credentialService.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate auth token: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, map[string]string{
			"merchant_token":  plainToken,
			"auth_token_hash": tokenHash,
		})
	}

	_, _ = fmt.Fprintln(writer, "# Merchant Token")
	_, _ = fmt.Fprintln(writer, "# Give this to the merchant. It is shown once and never stored.")
	_, _ = fmt.Fprintf(writer, "MERCHANT_TOKEN=\"%s\"\n", plainToken)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "# Server Configuration")
	_, _ = fmt.Fprintf(writer, "AUTH_TOKEN_HASH='%s'\n", tokenHash)
	return nil
}
