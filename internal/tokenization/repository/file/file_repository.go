// Package file implements the vault stores as JSON documents on disk.
//
// The mapping store keeps a single JSON object of token to encrypted PAN, and the
// ledger keeps a JSON array of purchase records. Both hold their document in memory
// and rewrite it atomically on every change.
package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// MappingStore persists token mappings in a JSON object file.
type MappingStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]cryptoDomain.EncryptedPAN
}

// NewMappingStore loads the mapping file at path, creating its directory when needed.
// A missing or empty file starts an empty store.
func NewMappingStore(path string) (*MappingStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, apperrors.Wrap(err, "failed to create store directory")
	}

	entries := make(map[string]cryptoDomain.EncryptedPAN)
	if _, err := readJSON(path, &entries); err != nil {
		return nil, apperrors.Wrap(err, "failed to load token map")
	}
	if entries == nil {
		entries = make(map[string]cryptoDomain.EncryptedPAN)
	}

	return &MappingStore{path: path, entries: entries}, nil
}

// Put stores blob under token unless token is already present. The in-memory map is
// only updated once the new document is durable.
func (m *MappingStore) Put(ctx context.Context, token string, blob cryptoDomain.EncryptedPAN) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[token]; exists {
		return tokenizationDomain.ErrTokenAlreadyExists
	}

	m.entries[token] = blob
	if err := writeJSONAtomic(m.path, m.entries); err != nil {
		delete(m.entries, token)
		return apperrors.Wrap(err, "failed to write token map")
	}
	return nil
}

// Get returns the blob stored under token.
func (m *MappingStore) Get(ctx context.Context, token string) (cryptoDomain.EncryptedPAN, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.entries[token]
	return blob, ok, nil
}

// PurchaseLedger persists purchase records in a JSON array file.
type PurchaseLedger struct {
	path    string
	mu      sync.RWMutex
	records []tokenizationDomain.PurchaseRecord
}

// NewPurchaseLedger loads the ledger file at path. A missing or empty file is an empty
// ledger. Records written without a sequence number are numbered by position.
func NewPurchaseLedger(path string) (*PurchaseLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, apperrors.Wrap(err, "failed to create ledger directory")
	}

	var records []tokenizationDomain.PurchaseRecord
	if _, err := readJSON(path, &records); err != nil {
		return nil, apperrors.Wrap(err, "failed to load purchases")
	}

	var last uint64
	for i := range records {
		if records[i].Sequence <= last {
			records[i].Sequence = last + 1
		}
		last = records[i].Sequence
	}

	return &PurchaseLedger{path: path, records: records}, nil
}

// Append adds a record with the next sequence number and rewrites the ledger file.
func (l *PurchaseLedger) Append(
	ctx context.Context,
	token, amount string,
) (*tokenizationDomain.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var next uint64 = 1
	if n := len(l.records); n > 0 {
		next = l.records[n-1].Sequence + 1
	}

	record := tokenizationDomain.PurchaseRecord{
		Sequence:  next,
		Token:     token,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	l.records = append(l.records, record)
	if err := writeJSONAtomic(l.path, l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		return nil, apperrors.Wrap(err, "failed to write purchases")
	}
	return &record, nil
}

// List returns records in sequence order, filtered by token when it is not empty.
func (l *PurchaseLedger) List(
	ctx context.Context,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return tokenizationDomain.PagePurchases(l.records, token, offset, limit), nil
}
