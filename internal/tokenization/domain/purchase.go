package domain

import (
	"fmt"
	"time"
)

// PurchaseRecord is one entry of the append-only purchase ledger.
// It never carries PAN data.
type PurchaseRecord struct {
	Sequence  uint64    `json:"sequence"`
	Token     string    `json:"token"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ChargeReceipt confirms a recorded charge.
type ChargeReceipt struct {
	Token     string
	Amount    string
	Sequence  uint64
	CreatedAt time.Time
	Message   string
}

// NewChargeReceipt builds the receipt for a recorded purchase.
func NewChargeReceipt(record *PurchaseRecord) *ChargeReceipt {
	return &ChargeReceipt{
		Token:     record.Token,
		Amount:    record.Amount,
		Sequence:  record.Sequence,
		CreatedAt: record.CreatedAt,
		Message:   fmt.Sprintf("Charged $%s to token %s", record.Amount, record.Token),
	}
}

// PagePurchases filters records by token (all records when token is empty), skips offset
// matches and returns at most limit of them as copies. A non-positive limit returns every
// remaining match.
func PagePurchases(records []PurchaseRecord, token string, offset, limit int) []*PurchaseRecord {
	page := make([]*PurchaseRecord, 0)
	skipped := 0
	for i := range records {
		if token != "" && records[i].Token != token {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(page) >= limit {
			break
		}
		record := records[i]
		page = append(page, &record)
	}
	return page
}
