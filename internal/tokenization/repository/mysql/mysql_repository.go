// Package mysql implements the vault stores on MySQL.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/go-sql-driver/mysql"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// duplicateEntry is the MySQL error number for a duplicate key.
const duplicateEntry = 1062

// MappingStore persists token mappings in the vault_tokens table.
type MappingStore struct {
	db *sql.DB
}

// NewMappingStore creates a new MySQL MappingStore.
func NewMappingStore(db *sql.DB) *MappingStore {
	return &MappingStore{db: db}
}

// Put inserts the mapping. The primary key on token rejects duplicates.
func (m *MappingStore) Put(ctx context.Context, token string, blob cryptoDomain.EncryptedPAN) error {
	query := `INSERT INTO vault_tokens (token, encrypted_pan, created_at) VALUES (?, ?, ?)`

	_, err := m.db.ExecContext(ctx, query, token, string(blob), time.Now().UTC())
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntry {
			return tokenizationDomain.ErrTokenAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// Get retrieves the blob stored under token.
func (m *MappingStore) Get(ctx context.Context, token string) (cryptoDomain.EncryptedPAN, bool, error) {
	query := `SELECT encrypted_pan FROM vault_tokens WHERE token = ?`

	var blob string
	err := m.db.QueryRowContext(ctx, query, token).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(err, "failed to get token")
	}
	return cryptoDomain.EncryptedPAN(blob), true, nil
}

// PurchaseLedger persists purchase records in the vault_purchases table.
type PurchaseLedger struct {
	db *sql.DB
}

// NewPurchaseLedger creates a new MySQL PurchaseLedger.
func NewPurchaseLedger(db *sql.DB) *PurchaseLedger {
	return &PurchaseLedger{db: db}
}

// Append inserts a record. The sequence is the AUTO_INCREMENT id of the new row.
func (m *PurchaseLedger) Append(
	ctx context.Context,
	token, amount string,
) (*tokenizationDomain.PurchaseRecord, error) {
	query := `INSERT INTO vault_purchases (token, amount, created_at) VALUES (?, ?, ?)`

	record := &tokenizationDomain.PurchaseRecord{
		Token:     token,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	result, err := m.db.ExecContext(ctx, query, token, amount, record.CreatedAt)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to append purchase")
	}

	sequence, err := result.LastInsertId()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read purchase sequence")
	}
	record.Sequence = uint64(sequence)
	return record, nil
}

// List returns records ordered by sequence, filtered by token when it is not empty.
// A non-positive limit returns every remaining record.
func (m *PurchaseLedger) List(
	ctx context.Context,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	if limit <= 0 {
		limit = math.MaxInt32
	}

	query := `SELECT sequence, token, amount, created_at 
			  FROM vault_purchases 
			  WHERE (? = '' OR token = ?) 
			  ORDER BY sequence ASC 
			  LIMIT ? OFFSET ?`

	rows, err := m.db.QueryContext(ctx, query, token, token, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchases")
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*tokenizationDomain.PurchaseRecord, 0)
	for rows.Next() {
		var record tokenizationDomain.PurchaseRecord
		var sequence int64
		if err := rows.Scan(&sequence, &record.Token, &record.Amount, &record.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan purchase")
		}
		record.Sequence = uint64(sequence)
		record.CreatedAt = record.CreatedAt.UTC()
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating purchases")
	}

	return records, nil
}
