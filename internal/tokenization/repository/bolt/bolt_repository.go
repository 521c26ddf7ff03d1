// Package bolt implements the vault stores on a bbolt database file.
//
// Token mappings live in the "tokens" bucket keyed by token. Purchase records live in
// the "purchases" bucket keyed by their big-endian sequence number, and the
// "purchase_index" bucket holds one nested bucket per token listing its sequences.
// Every write is a single bbolt Update transaction, so a crash leaves either the
// previous or the new state on disk.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

var (
	tokensBucket        = []byte("tokens")
	purchasesBucket     = []byte("purchases")
	purchaseIndexBucket = []byte("purchase_index")
)

// openTimeout bounds how long Open waits for the file lock held by another process.
const openTimeout = 5 * time.Second

// DB is an open bbolt vault file.
type DB struct {
	db *bbolt.DB
}

// Open opens or creates the database at path and makes sure every bucket exists.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, apperrors.Wrap(err, "failed to create store directory")
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open bolt store")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{tokensBucket, purchasesBucket, purchaseIndexBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return apperrors.Wrapf(err, "failed to create bucket %s", bucket)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close releases the file lock and closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks that the database is open and its buckets are readable.
func (d *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(tokensBucket) == nil || tx.Bucket(purchasesBucket) == nil {
			return apperrors.Wrap(apperrors.ErrStorage, "bolt store buckets missing")
		}
		return nil
	})
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.db.Path()
}

// MappingStore persists token mappings in the tokens bucket.
type MappingStore struct {
	db *bbolt.DB
}

// NewMappingStore creates a MappingStore backed by d.
func NewMappingStore(d *DB) *MappingStore {
	return &MappingStore{db: d.db}
}

// Put stores blob under token unless token is already present.
func (m *MappingStore) Put(ctx context.Context, token string, blob cryptoDomain.EncryptedPAN) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return m.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(tokensBucket)
		key := []byte(token)
		if bucket.Get(key) != nil {
			return tokenizationDomain.ErrTokenAlreadyExists
		}
		if err := bucket.Put(key, []byte(blob)); err != nil {
			return apperrors.Wrap(err, "failed to put token")
		}
		return nil
	})
}

// Get returns the blob stored under token.
func (m *MappingStore) Get(ctx context.Context, token string) (cryptoDomain.EncryptedPAN, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var blob cryptoDomain.EncryptedPAN
	var found bool
	err := m.db.View(func(tx *bbolt.Tx) error {
		// Values are only valid inside the transaction; the string conversion copies.
		if value := tx.Bucket(tokensBucket).Get([]byte(token)); value != nil {
			blob = cryptoDomain.EncryptedPAN(value)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, apperrors.Wrap(err, "failed to get token")
	}
	return blob, found, nil
}

// PurchaseLedger persists purchase records in the purchases bucket.
type PurchaseLedger struct {
	db *bbolt.DB
}

// NewPurchaseLedger creates a PurchaseLedger backed by d.
func NewPurchaseLedger(d *DB) *PurchaseLedger {
	return &PurchaseLedger{db: d.db}
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}

// Append writes a record under the bucket's next sequence.
func (l *PurchaseLedger) Append(
	ctx context.Context,
	token, amount string,
) (*tokenizationDomain.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *tokenizationDomain.PurchaseRecord
	err := l.db.Update(func(tx *bbolt.Tx) error {
		purchases := tx.Bucket(purchasesBucket)
		sequence, err := purchases.NextSequence()
		if err != nil {
			return err
		}

		record = &tokenizationDomain.PurchaseRecord{
			Sequence:  sequence,
			Token:     token,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
		}
		value, err := json.Marshal(record)
		if err != nil {
			return err
		}

		key := sequenceKey(sequence)
		if err := purchases.Put(key, value); err != nil {
			return err
		}

		index, err := tx.Bucket(purchaseIndexBucket).CreateBucketIfNotExists([]byte(token))
		if err != nil {
			return err
		}
		return index.Put(key, nil)
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to append purchase")
	}
	return record, nil
}

// List returns records in sequence order, filtered by token when it is not empty.
// A non-positive limit returns every remaining record.
func (l *PurchaseLedger) List(
	ctx context.Context,
	token string,
	offset, limit int,
) ([]*tokenizationDomain.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]*tokenizationDomain.PurchaseRecord, 0)
	err := l.db.View(func(tx *bbolt.Tx) error {
		purchases := tx.Bucket(purchasesBucket)

		var keys *bbolt.Cursor
		if token == "" {
			keys = purchases.Cursor()
		} else {
			index := tx.Bucket(purchaseIndexBucket).Bucket([]byte(token))
			if index == nil {
				return nil
			}
			keys = index.Cursor()
		}

		skipped := 0
		for key, _ := keys.First(); key != nil; key, _ = keys.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(records) >= limit {
				break
			}

			value := purchases.Get(key)
			if value == nil {
				return apperrors.Wrapf(
					apperrors.ErrStorage,
					"purchase %d indexed but missing",
					binary.BigEndian.Uint64(key),
				)
			}

			var record tokenizationDomain.PurchaseRecord
			if err := json.Unmarshal(value, &record); err != nil {
				return apperrors.Wrap(err, "failed to decode purchase")
			}
			records = append(records, &record)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchases")
	}
	return records, nil
}
