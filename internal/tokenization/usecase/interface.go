// Package usecase implements the vault operations: tokenize, detokenize, charge and
// purchase listing, together with the persistence interfaces they depend on.
package usecase

import (
	"context"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// MappingStore persists token to encrypted PAN mappings.
//
// Implementations must make each Put atomic and durable: after a crash a reader sees
// either the previous state or the new entry, never a torn value.
type MappingStore interface {
	// Put stores blob under token. Returns ErrTokenAlreadyExists if token is already
	// mapped; an existing entry is never overwritten.
	Put(ctx context.Context, token string, blob cryptoDomain.EncryptedPAN) error

	// Get returns the blob for token. A missing token is ("", false, nil).
	Get(ctx context.Context, token string) (cryptoDomain.EncryptedPAN, bool, error)
}

// PurchaseLedger is the append-only log of charges. It never holds PAN data.
type PurchaseLedger interface {
	// Append durably records one charge and returns it with its sequence number.
	Append(ctx context.Context, token, amount string) (*tokenizationDomain.PurchaseRecord, error)

	// List returns records in append order. An empty token lists every record.
	// A missing or empty ledger yields an empty slice.
	List(ctx context.Context, token string, offset, limit int) ([]*tokenizationDomain.PurchaseRecord, error)
}

// AuditSink receives one event per significant vault outcome. Record must not block
// on I/O and has no failure mode visible to the caller.
type AuditSink interface {
	Record(ctx context.Context, event authDomain.AuditEvent, detail string)
}

// VaultUseCase defines the vault operations.
//
// Each operation takes the outcome of the authorization gate and refuses with
// ErrUnauthorized, before touching any component, when it is false. Every returned
// error wraps exactly one kind from internal/errors, except entropy source failures.
type VaultUseCase interface {
	// Tokenize validates pan, encrypts it and stores it under a fresh unique token.
	Tokenize(ctx context.Context, authorized bool, pan string) (string, error)

	// Detokenize returns the PAN stored under token. A blob that fails authentication
	// yields ErrIntegrityCheckFailed, never ErrTokenNotFound.
	Detokenize(ctx context.Context, authorized bool, token string) (string, error)

	// Charge records amount against token after checking that the token exists.
	// The PAN is never decrypted.
	Charge(ctx context.Context, authorized bool, token, amount string) (*tokenizationDomain.ChargeReceipt, error)

	// ListPurchases returns ledger records, optionally filtered by token.
	ListPurchases(
		ctx context.Context,
		authorized bool,
		token string,
		offset, limit int,
	) ([]*tokenizationDomain.PurchaseRecord, error)
}
