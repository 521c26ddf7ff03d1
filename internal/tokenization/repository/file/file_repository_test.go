package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

func TestMappingStore_PutGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "token_map.json")

	store, err := NewMappingStore(path)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "tok", "blob-1"))
	assert.ErrorIs(t, store.Put(ctx, "tok", "blob-2"), tokenizationDomain.ErrTokenAlreadyExists)

	blob, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cryptoDomain.EncryptedPAN("blob-1"), blob)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMappingStore_FileLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token_map.json")

	store, err := NewMappingStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "tok-a", "blob-a"))
	require.NoError(t, store.Put(ctx, "tok-b", "blob-b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"tok-a": "blob-a", "tok-b": "blob-b"}, doc)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMappingStore_LoadsExistingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token_map.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"existing": "blob"}`), 0o600))

	store, err := NewMappingStore(path)
	require.NoError(t, err)

	blob, ok, err := store.Get(ctx, "existing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cryptoDomain.EncryptedPAN("blob"), blob)
}

func TestMappingStore_EmptyAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err := NewMappingStore(empty)
	assert.NoError(t, err)

	null := filepath.Join(dir, "null.json")
	require.NoError(t, os.WriteFile(null, []byte("null"), 0o600))
	store, err := NewMappingStore(null)
	require.NoError(t, err)
	assert.NoError(t, store.Put(context.Background(), "tok", "blob"))

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o600))
	_, err = NewMappingStore(corrupt)
	assert.Error(t, err)
}

func TestMappingStore_FailedWriteIsNotVisible(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "store")
	store, err := NewMappingStore(filepath.Join(dir, "token_map.json"))
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))

	err = store.Put(ctx, "tok", "blob")
	require.Error(t, err)

	_, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMappingStore_ConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token_map.json")
	store, err := NewMappingStore(path)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 30; i++ {
		g.Go(func() error {
			return store.Put(ctx, fmt.Sprintf("tok-%d", i), cryptoDomain.EncryptedPAN(fmt.Sprintf("blob-%d", i)))
		})
	}
	require.NoError(t, g.Wait())

	reloaded, err := NewMappingStore(path)
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		blob, ok, err := reloaded.Get(ctx, fmt.Sprintf("tok-%d", i))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, cryptoDomain.EncryptedPAN(fmt.Sprintf("blob-%d", i)), blob)
	}
}

func TestPurchaseLedger_AppendList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "purchases.json")

	ledger, err := NewPurchaseLedger(path)
	require.NoError(t, err)

	records, err := ledger.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	first, err := ledger.Append(ctx, "tok-a", "49.99")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.Sequence)
	_, err = ledger.Append(ctx, "tok-b", "10.00")
	require.NoError(t, err)

	reloaded, err := NewPurchaseLedger(path)
	require.NoError(t, err)
	third, err := reloaded.Append(ctx, "tok-a", "5.00")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), third.Sequence)

	onlyA, err := reloaded.List(ctx, "tok-a", 0, 0)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, "49.99", onlyA[0].Amount)
	assert.Equal(t, "5.00", onlyA[1].Amount)
}

func TestPurchaseLedger_LegacyRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "purchases.json")
	legacy := `[{"token": "tok-a", "amount": "49.99"}, {"token": "tok-b", "amount": "10.00"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	ledger, err := NewPurchaseLedger(path)
	require.NoError(t, err)

	records, err := ledger.List(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(1), records[0].Sequence)
	assert.Equal(t, uint64(2), records[1].Sequence)

	next, err := ledger.Append(ctx, "tok-a", "1.00")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), next.Sequence)
}

func TestPurchaseLedger_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	ledger, err := NewPurchaseLedger(filepath.Join(t.TempDir(), "purchases.json"))
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 30; i++ {
		g.Go(func() error {
			_, err := ledger.Append(ctx, "tok", "1.00")
			return err
		})
	}
	require.NoError(t, g.Wait())

	records, err := ledger.List(ctx, "tok", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 30)
	for i, record := range records {
		assert.Equal(t, uint64(i+1), record.Sequence)
	}
}
