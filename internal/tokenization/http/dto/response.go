package dto

import (
	"time"

	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// TokenizeResponse carries the token issued for a PAN.
type TokenizeResponse struct {
	Token string `json:"token"`
}

// DetokenizeResponse carries the PAN stored under a token.
type DetokenizeResponse struct {
	PAN string `json:"pan"`
}

// ChargeResponse confirms a recorded charge.
type ChargeResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	Amount    string    `json:"amount"`
	Sequence  uint64    `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// MapReceiptToChargeResponse converts a domain charge receipt to an API response.
func MapReceiptToChargeResponse(receipt *tokenizationDomain.ChargeReceipt) ChargeResponse {
	return ChargeResponse{
		Message:   receipt.Message,
		Token:     receipt.Token,
		Amount:    receipt.Amount,
		Sequence:  receipt.Sequence,
		CreatedAt: receipt.CreatedAt,
	}
}

// PurchaseResponse represents one ledger record in API responses.
type PurchaseResponse struct {
	Sequence  uint64    `json:"sequence"`
	Token     string    `json:"token"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPurchasesResponse represents a page of ledger records.
type ListPurchasesResponse struct {
	Data []PurchaseResponse `json:"data"`
}

// MapPurchasesToListResponse converts ledger records to a list response. The data
// array is never null.
func MapPurchasesToListResponse(records []*tokenizationDomain.PurchaseRecord) ListPurchasesResponse {
	data := make([]PurchaseResponse, 0, len(records))
	for _, record := range records {
		data = append(data, PurchaseResponse{
			Sequence:  record.Sequence,
			Token:     record.Token,
			Amount:    record.Amount,
			CreatedAt: record.CreatedAt,
		})
	}
	return ListPurchasesResponse{Data: data}
}
