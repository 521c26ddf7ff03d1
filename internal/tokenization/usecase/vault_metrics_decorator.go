package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/panvault/internal/errors"
	"github.com/allisson/panvault/internal/metrics"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

const metricsDomain = "vault"

// vaultUseCaseWithMetrics decorates VaultUseCase with metrics instrumentation.
type vaultUseCaseWithMetrics struct {
	next    VaultUseCase
	metrics metrics.BusinessMetrics
}

// NewVaultUseCaseWithMetrics wraps a VaultUseCase with metrics recording.
func NewVaultUseCaseWithMetrics(useCase VaultUseCase, m metrics.BusinessMetrics) VaultUseCase {
	return &vaultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// statusOf labels an outcome by error kind so integrity failures stand out from
// ordinary caller mistakes.
func statusOf(err error) string {
	switch apperrors.KindOf(err) {
	case nil:
		if err != nil {
			return "error"
		}
		return "success"
	case apperrors.ErrIntegrity:
		return "integrity_error"
	case apperrors.ErrUnauthorized:
		return "unauthorized"
	case apperrors.ErrInvalidInput:
		return "invalid_input"
	case apperrors.ErrNotFound:
		return "not_found"
	case apperrors.ErrStorage:
		return "storage_error"
	default:
		return "error"
	}
}

func (v *vaultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusOf(err)
	v.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	v.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Tokenize records metrics for tokenize operations.
func (v *vaultUseCaseWithMetrics) Tokenize(ctx context.Context, authorized bool, pan string) (string, error) {
	start := time.Now()
	token, err := v.next.Tokenize(ctx, authorized, pan)
	v.record(ctx, "tokenize", start, err)
	return token, err
}

// Detokenize records metrics for detokenize operations.
func (v *vaultUseCaseWithMetrics) Detokenize(ctx context.Context, authorized bool, token string) (string, error) {
	start := time.Now()
	pan, err := v.next.Detokenize(ctx, authorized, token)
	v.record(ctx, "detokenize", start, err)
	return pan, err
}

// Charge records metrics for charge operations.
func (v *vaultUseCaseWithMetrics) Charge(
	ctx context.Context,
	authorized bool,
	token, amount string,
) (*tokenizationDomain.ChargeReceipt, error) {
	start := time.Now()
	receipt, err := v.next.Charge(ctx, authorized, token, amount)
	v.record(ctx, "charge", start, err)
	return receipt, err
}

// ListPurchases records metrics for purchase listing.
func (v *vaultUseCaseWithMetrics) ListPurchases(
	ctx context.Context,
	authorized bool,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	start := time.Now()
	records, err := v.next.ListPurchases(ctx, authorized, token, offset, limit)
	v.record(ctx, "list_purchases", start, err)
	return records, err
}
