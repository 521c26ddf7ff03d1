package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

func TestMappingStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMappingStore()

	blob, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, blob)

	require.NoError(t, store.Put(ctx, "tok", cryptoDomain.EncryptedPAN("blob-1")))

	err = store.Put(ctx, "tok", cryptoDomain.EncryptedPAN("blob-2"))
	assert.ErrorIs(t, err, tokenizationDomain.ErrTokenAlreadyExists)

	blob, ok, err = store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cryptoDomain.EncryptedPAN("blob-1"), blob)
}

func TestMappingStore_ConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	store := NewMappingStore()

	var g errgroup.Group
	for i := 0; i < 200; i++ {
		g.Go(func() error {
			return store.Put(ctx, fmt.Sprintf("tok-%d", i), cryptoDomain.EncryptedPAN(fmt.Sprintf("blob-%d", i)))
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 200, store.Len())

	blob, ok, err := store.Get(ctx, "tok-42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cryptoDomain.EncryptedPAN("blob-42"), blob)
}

func TestPurchaseLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewPurchaseLedger()

	records, err := ledger.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	first, err := ledger.Append(ctx, "tok-a", "49.99")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.Sequence)

	_, err = ledger.Append(ctx, "tok-b", "10.00")
	require.NoError(t, err)
	third, err := ledger.Append(ctx, "tok-a", "5.00")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), third.Sequence)

	all, err := ledger.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := ledger.List(ctx, "tok-a", 0, 10)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, "49.99", onlyA[0].Amount)
	assert.Equal(t, "5.00", onlyA[1].Amount)

	paged, err := ledger.List(ctx, "", 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, uint64(2), paged[0].Sequence)
}

func TestPurchaseLedger_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	ledger := NewPurchaseLedger()

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			_, err := ledger.Append(ctx, "tok", "1.00")
			return err
		})
	}
	require.NoError(t, g.Wait())

	records, err := ledger.List(ctx, "tok", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 100)
	for i, record := range records {
		assert.Equal(t, uint64(i+1), record.Sequence)
	}
}
