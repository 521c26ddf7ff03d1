package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	authMocks "github.com/allisson/panvault/internal/auth/usecase/mocks"
)

func TestRunVerifyAuditLog(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success-text", func(t *testing.T) {
		useCase := authMocks.NewMockAuditVerifyUseCase(t)
		useCase.EXPECT().Verify(mock.Anything).Return(&authDomain.AuditVerification{Total: 4, Valid: 4}, nil)

		var out bytes.Buffer
		require.NoError(t, RunVerifyAuditLog(ctx, useCase, logger, &out, "text"))
		assert.Contains(t, out.String(), "Audit Log Integrity Verification")
		assert.Contains(t, out.String(), "Status: PASSED")
	})

	t.Run("success-json", func(t *testing.T) {
		useCase := authMocks.NewMockAuditVerifyUseCase(t)
		useCase.EXPECT().Verify(mock.Anything).Return(&authDomain.AuditVerification{Total: 2, Valid: 2}, nil)

		var out bytes.Buffer
		require.NoError(t, RunVerifyAuditLog(ctx, useCase, logger, &out, "json"))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, float64(2), result["total"])
		assert.Equal(t, true, result["passed"])
		assert.Equal(t, []interface{}{}, result["invalid_lines"])
	})

	t.Run("empty-log", func(t *testing.T) {
		useCase := authMocks.NewMockAuditVerifyUseCase(t)
		useCase.EXPECT().Verify(mock.Anything).Return(&authDomain.AuditVerification{}, nil)

		var out bytes.Buffer
		require.NoError(t, RunVerifyAuditLog(ctx, useCase, logger, &out, "text"))
		assert.Contains(t, out.String(), "Audit log is empty")
	})

	t.Run("tampered-lines", func(t *testing.T) {
		useCase := authMocks.NewMockAuditVerifyUseCase(t)
		useCase.EXPECT().Verify(mock.Anything).Return(&authDomain.AuditVerification{
			Total:          5,
			Valid:          3,
			InvalidLines:   []int{2},
			MalformedLines: []int{4},
		}, nil)

		var out bytes.Buffer
		err := RunVerifyAuditLog(ctx, useCase, logger, &out, "text")
		require.ErrorContains(t, err, "integrity check failed: 1 invalid, 1 malformed")
		assert.Contains(t, out.String(), "Invalid signature on lines: [2]")
		assert.Contains(t, out.String(), "Malformed lines: [4]")
		assert.Contains(t, out.String(), "Status: FAILED")
	})

	t.Run("read-error", func(t *testing.T) {
		useCase := authMocks.NewMockAuditVerifyUseCase(t)
		useCase.EXPECT().Verify(mock.Anything).Return(nil, errors.New("permission denied"))

		err := RunVerifyAuditLog(ctx, useCase, logger, &bytes.Buffer{}, "text")
		assert.ErrorContains(t, err, "failed to verify audit log")
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunVerifyAuditLog(ctx, nil, logger, &bytes.Buffer{}, "xml")
		assert.ErrorContains(t, err, "invalid format")
	})
}
