package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	cryptoService "github.com/allisson/panvault/internal/crypto/service"
	apperrors "github.com/allisson/panvault/internal/errors"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
	tokenizationService "github.com/allisson/panvault/internal/tokenization/service"
)

// maxTokenAttempts bounds how many tokens Tokenize generates before giving up on collisions.
const maxTokenAttempts = 5

// vaultUseCase implements VaultUseCase. It holds no per-call state.
type vaultUseCase struct {
	generator tokenizationService.TokenGenerator
	cipher    cryptoService.PANCipher
	store     MappingStore
	ledger    PurchaseLedger
	audit     AuditSink
	logger    *slog.Logger
}

// NewVaultUseCase creates a VaultUseCase.
func NewVaultUseCase(
	generator tokenizationService.TokenGenerator,
	cipher cryptoService.PANCipher,
	store MappingStore,
	ledger PurchaseLedger,
	audit AuditSink,
	logger *slog.Logger,
) VaultUseCase {
	return &vaultUseCase{
		generator: generator,
		cipher:    cipher,
		store:     store,
		ledger:    ledger,
		audit:     audit,
		logger:    logger,
	}
}

// Tokenize validates pan, encrypts it once and stores it under a generated token,
// regenerating the token when the store reports a collision.
func (v *vaultUseCase) Tokenize(ctx context.Context, authorized bool, pan string) (string, error) {
	if !authorized {
		return "", v.refuse(ctx, "tokenize")
	}
	if err := tokenizationDomain.ValidatePAN(pan); err != nil {
		return "", v.invalid(ctx, "tokenize", err)
	}

	panBytes := []byte(pan)
	defer cryptoDomain.Zero(panBytes)

	blob, err := v.cipher.Encrypt(panBytes)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt pan")
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := v.generator.Generate()
		if err != nil {
			return "", apperrors.Wrap(err, "failed to generate token")
		}
		if token == pan {
			continue
		}

		err = v.store.Put(ctx, token, blob)
		if apperrors.Is(err, tokenizationDomain.ErrTokenAlreadyExists) {
			continue
		}
		if err != nil {
			return "", v.storageFailure(ctx, "tokenize", err)
		}

		v.audit.Record(ctx, authDomain.AuditTokenized,
			fmt.Sprintf("pan=%s token=%s", tokenizationDomain.MaskPAN(pan), token))
		return token, nil
	}

	return "", v.storageFailure(ctx, "tokenize", tokenizationDomain.ErrTokenSpaceExhausted)
}

// Detokenize looks up token and decrypts its blob.
func (v *vaultUseCase) Detokenize(ctx context.Context, authorized bool, token string) (string, error) {
	if !authorized {
		return "", v.refuse(ctx, "detokenize")
	}
	if err := tokenizationDomain.ValidateToken(token); err != nil {
		return "", v.invalid(ctx, "detokenize", err)
	}

	blob, err := v.lookup(ctx, "detokenize", token)
	if err != nil {
		return "", err
	}

	plaintext, err := v.cipher.Decrypt(blob)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrIntegrity) {
			err = fmt.Errorf("%w: %w", cryptoDomain.ErrIntegrityCheckFailed, err)
		}
		v.logger.Error("encrypted pan failed integrity check",
			slog.String("token", token),
			slog.Bool("security_event", true),
			slog.Any("error", err))
		v.audit.Record(ctx, authDomain.AuditIntegrityError, "token="+token)
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	v.audit.Record(ctx, authDomain.AuditDetokenized, "token="+token)
	return string(plaintext), nil
}

// Charge validates the amount and token, checks that the token exists and appends one
// ledger record. The cipher is never used.
func (v *vaultUseCase) Charge(
	ctx context.Context,
	authorized bool,
	token, amount string,
) (*tokenizationDomain.ChargeReceipt, error) {
	if !authorized {
		return nil, v.refuse(ctx, "charge")
	}
	if err := tokenizationDomain.ValidateAmount(amount); err != nil {
		return nil, v.invalid(ctx, "charge", err)
	}
	if err := tokenizationDomain.ValidateToken(token); err != nil {
		return nil, v.invalid(ctx, "charge", err)
	}

	if _, err := v.lookup(ctx, "charge", token); err != nil {
		return nil, err
	}

	record, err := v.ledger.Append(ctx, token, amount)
	if err != nil {
		return nil, v.storageFailure(ctx, "charge", err)
	}

	v.audit.Record(ctx, authDomain.AuditCharged, fmt.Sprintf("token=%s amount=%s", token, amount))
	return tokenizationDomain.NewChargeReceipt(record), nil
}

// ListPurchases returns a page of ledger records, optionally for a single token.
func (v *vaultUseCase) ListPurchases(
	ctx context.Context,
	authorized bool,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	if !authorized {
		return nil, v.refuse(ctx, "list_purchases")
	}
	if token != "" {
		if err := tokenizationDomain.ValidateToken(token); err != nil {
			return nil, v.invalid(ctx, "list_purchases", err)
		}
	}

	records, err := v.ledger.List(ctx, token, offset, limit)
	if err != nil {
		return nil, v.storageFailure(ctx, "list_purchases", err)
	}
	return records, nil
}

// lookup fetches the blob for token, turning absence into ErrTokenNotFound.
func (v *vaultUseCase) lookup(ctx context.Context, operation, token string) (cryptoDomain.EncryptedPAN, error) {
	blob, ok, err := v.store.Get(ctx, token)
	if err != nil {
		return "", v.storageFailure(ctx, operation, err)
	}
	if !ok {
		v.audit.Record(ctx, authDomain.AuditNotFound, fmt.Sprintf("operation=%s token=%s", operation, token))
		return "", tokenizationDomain.ErrTokenNotFound
	}
	return blob, nil
}

func (v *vaultUseCase) refuse(ctx context.Context, operation string) error {
	v.audit.Record(ctx, authDomain.AuditUnauthorized, "operation="+operation)
	return tokenizationDomain.ErrUnauthorized
}

// invalid records a validation failure. The rejected input is not written to the audit
// log since it may be a PAN.
func (v *vaultUseCase) invalid(ctx context.Context, operation string, err error) error {
	v.audit.Record(ctx, authDomain.AuditValidationError,
		fmt.Sprintf("operation=%s reason=%s", operation, reason(err)))
	return err
}

// storageFailure records a store or ledger failure and makes sure the returned error
// carries a kind.
func (v *vaultUseCase) storageFailure(ctx context.Context, operation string, err error) error {
	if apperrors.KindOf(err) == nil {
		err = fmt.Errorf("%w: %w", tokenizationDomain.ErrStoreUnavailable, err)
	}
	v.audit.Record(ctx, authDomain.AuditStorageError, "operation="+operation)
	return err
}

// reason strips the kind suffix from a domain error message.
func reason(err error) string {
	msg := err.Error()
	if kind := apperrors.KindOf(err); kind != nil {
		if trimmed, ok := strings.CutSuffix(msg, ": "+kind.Error()); ok {
			return trimmed
		}
	}
	return msg
}
