package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
	usecaseMocks "github.com/allisson/panvault/internal/tokenization/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "vault", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "vault", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewVaultUseCaseWithMetrics(t *testing.T) {
	mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.IsType(t, &vaultUseCaseWithMetrics{}, decorator)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, "success"},
		{errors.New("boom"), "error"},
		{cryptoDomain.ErrIntegrityCheckFailed, "integrity_error"},
		{tokenizationDomain.ErrUnauthorized, "unauthorized"},
		{tokenizationDomain.ErrInvalidPAN, "invalid_input"},
		{tokenizationDomain.ErrTokenNotFound, "not_found"},
		{tokenizationDomain.ErrTokenSpaceExhausted, "storage_error"},
		{tokenizationDomain.ErrTokenAlreadyExists, "error"},
		{fmt.Errorf("wrapped: %w", tokenizationDomain.ErrStoreUnavailable), "storage_error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusOf(tt.err))
		})
	}
}

func TestVaultUseCaseWithMetrics_Tokenize(t *testing.T) {
	tests := []struct {
		name           string
		pan            string
		returnToken    string
		returnErr      error
		expectedStatus string
	}{
		{"Success", "4111111111111111", "tok", nil, "success"},
		{"InvalidInput", "12", "", tokenizationDomain.ErrInvalidPAN, "invalid_input"},
		{"StorageError", "4111111111111111", "", tokenizationDomain.ErrTokenSpaceExhausted, "storage_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
			mockMetrics := &mockBusinessMetrics{}
			mockUseCase.EXPECT().
				Tokenize(mock.Anything, true, tt.pan).
				Return(tt.returnToken, tt.returnErr).
				Once()
			expectMetrics(mockMetrics, "tokenize", tt.expectedStatus)

			decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)
			token, err := decorator.Tokenize(context.Background(), true, tt.pan)

			assert.Equal(t, tt.returnToken, token)
			assert.Equal(t, tt.returnErr, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestVaultUseCaseWithMetrics_Detokenize(t *testing.T) {
	tests := []struct {
		name           string
		authorized     bool
		returnPAN      string
		returnErr      error
		expectedStatus string
	}{
		{"Success", true, "4111111111111111", nil, "success"},
		{"Unauthorized", false, "", tokenizationDomain.ErrUnauthorized, "unauthorized"},
		{"NotFound", true, "", tokenizationDomain.ErrTokenNotFound, "not_found"},
		{"Integrity", true, "", cryptoDomain.ErrIntegrityCheckFailed, "integrity_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
			mockMetrics := &mockBusinessMetrics{}
			mockUseCase.EXPECT().
				Detokenize(mock.Anything, tt.authorized, "tok").
				Return(tt.returnPAN, tt.returnErr).
				Once()
			expectMetrics(mockMetrics, "detokenize", tt.expectedStatus)

			decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)
			pan, err := decorator.Detokenize(context.Background(), tt.authorized, "tok")

			assert.Equal(t, tt.returnPAN, pan)
			assert.Equal(t, tt.returnErr, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestVaultUseCaseWithMetrics_Charge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		receipt := &tokenizationDomain.ChargeReceipt{Token: "tok", Amount: "49.99", Sequence: 1}
		mockUseCase.EXPECT().Charge(mock.Anything, true, "tok", "49.99").Return(receipt, nil).Once()
		expectMetrics(mockMetrics, "charge", "success")

		decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Charge(context.Background(), true, "tok", "49.99")

		assert.NoError(t, err)
		assert.Equal(t, receipt, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		mockUseCase.EXPECT().
			Charge(mock.Anything, true, "tok", "-5").
			Return(nil, tokenizationDomain.ErrInvalidAmount).
			Once()
		expectMetrics(mockMetrics, "charge", "invalid_input")

		decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Charge(context.Background(), true, "tok", "-5")

		assert.ErrorIs(t, err, tokenizationDomain.ErrInvalidAmount)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}

func TestVaultUseCaseWithMetrics_ListPurchases(t *testing.T) {
	mockUseCase := usecaseMocks.NewMockVaultUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	records := []*tokenizationDomain.PurchaseRecord{{Sequence: 1, Token: "tok", Amount: "1.00"}}
	mockUseCase.EXPECT().ListPurchases(mock.Anything, true, "", 0, 50).Return(records, nil).Once()
	expectMetrics(mockMetrics, "list_purchases", "success")

	decorator := NewVaultUseCaseWithMetrics(mockUseCase, mockMetrics)
	result, err := decorator.ListPurchases(context.Background(), true, "", 0, 50)

	assert.NoError(t, err)
	assert.Equal(t, records, result)
	mockMetrics.AssertExpectations(t)
}
