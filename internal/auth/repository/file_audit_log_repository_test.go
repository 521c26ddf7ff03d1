package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
)

func TestFileAuditLogRepository_CreateAndScan(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "logs", "audit.log")

	repo, err := NewFileAuditLogRepository(path)
	require.NoError(t, err)

	first := authDomain.NewAuditLog(authDomain.AuditTokenized, "token=a")
	second := authDomain.NewAuditLog(authDomain.AuditCharged, "token=a amount=1.00")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var lines []string
	err = ScanAuditLogFile(ctx, path, func(lineNo int, line string) error {
		assert.Equal(t, len(lines)+1, lineNo)
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{first.Line(), second.Line()}, lines)
}

func TestFileAuditLogRepository_AppendsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.log")

	for i := 0; i < 2; i++ {
		repo, err := NewFileAuditLogRepository(path)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, authDomain.NewAuditLog(authDomain.AuditNotFound, "token=x")))
		require.NoError(t, repo.Close())
	}

	count := 0
	require.NoError(t, ScanAuditLogFile(ctx, path, func(int, string) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)
}

func TestFileAuditLogRepository_ConcurrentWritesStayLineAligned(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.log")
	repo, err := NewFileAuditLogRepository(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, authDomain.NewAuditLog(authDomain.AuditDetokenized, "token=t")))
		}()
	}
	wg.Wait()
	require.NoError(t, repo.Close())

	count := 0
	require.NoError(t, repo.Scan(ctx, func(_ int, line string) error {
		count++
		_, err := authDomain.ParseAuditLine(line)
		return err
	}))
	assert.Equal(t, 50, count)
}

func TestFileAuditLogRepository_CreateAfterClose(t *testing.T) {
	repo, err := NewFileAuditLogRepository(filepath.Join(t.TempDir(), "audit.log"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	err = repo.Create(context.Background(), authDomain.NewAuditLog(authDomain.AuditTokenized, ""))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestScanAuditLogFile_MissingFile(t *testing.T) {
	called := false
	err := ScanAuditLogFile(context.Background(), filepath.Join(t.TempDir(), "none.log"), func(int, string) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestFileAuditLogReader_ScansWithoutCreating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	reader := NewFileAuditLogReader(path)

	require.NoError(t, reader.Scan(context.Background(), func(int, string) error { return nil }))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	repo, err := NewFileAuditLogRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), authDomain.NewAuditLog(authDomain.AuditCharged, "tok")))
	require.NoError(t, repo.Close())

	var lines []string
	require.NoError(t, reader.Scan(context.Background(), func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	}))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], " - CHARGED - tok - ")
}
