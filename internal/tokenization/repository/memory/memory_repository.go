// Package memory implements the vault stores in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// MappingStore keeps token mappings in a map guarded by a RWMutex.
type MappingStore struct {
	mu      sync.RWMutex
	entries map[string]cryptoDomain.EncryptedPAN
}

// NewMappingStore creates an empty MappingStore.
func NewMappingStore() *MappingStore {
	return &MappingStore{entries: make(map[string]cryptoDomain.EncryptedPAN)}
}

// Put stores blob under token unless token is already present.
func (m *MappingStore) Put(_ context.Context, token string, blob cryptoDomain.EncryptedPAN) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[token]; exists {
		return tokenizationDomain.ErrTokenAlreadyExists
	}
	m.entries[token] = blob
	return nil
}

// Get returns the blob stored under token.
func (m *MappingStore) Get(_ context.Context, token string) (cryptoDomain.EncryptedPAN, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.entries[token]
	return blob, ok, nil
}

// Len returns the number of stored mappings.
func (m *MappingStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// PurchaseLedger keeps purchase records in an append-only slice.
type PurchaseLedger struct {
	mu      sync.RWMutex
	records []tokenizationDomain.PurchaseRecord
}

// NewPurchaseLedger creates an empty PurchaseLedger.
func NewPurchaseLedger() *PurchaseLedger {
	return &PurchaseLedger{}
}

// Append adds a record and assigns it the next sequence number.
func (l *PurchaseLedger) Append(
	_ context.Context,
	token, amount string,
) (*tokenizationDomain.PurchaseRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := tokenizationDomain.PurchaseRecord{
		Sequence:  uint64(len(l.records)) + 1,
		Token:     token,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	l.records = append(l.records, record)
	return &record, nil
}

// List returns records in sequence order, filtered by token when it is not empty.
func (l *PurchaseLedger) List(
	_ context.Context,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return tokenizationDomain.PagePurchases(l.records, token, offset, limit), nil
}
