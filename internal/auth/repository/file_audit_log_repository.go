// Package repository implements audit log persistence.
package repository

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
)

// maxAuditLineSize bounds a single audit line when scanning.
const maxAuditLineSize = 64 * 1024

// FileAuditLogRepository appends audit lines to a plain text file opened in append mode.
// Each Create issues a single write of one full line, so concurrent writers never
// interleave within a line.
type FileAuditLogRepository struct {
	path string

	mu   sync.Mutex
	file *os.File
}

// NewFileAuditLogRepository opens (creating if needed) the audit log at path.
// The parent directory is created with 0700 and the file with 0600.
func NewFileAuditLogRepository(path string) (*FileAuditLogRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, apperrors.Wrap(err, "failed to create audit log directory")
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open audit log")
	}

	return &FileAuditLogRepository{path: path, file: file}, nil
}

// Create appends the rendered entry followed by a newline.
func (f *FileAuditLogRepository) Create(_ context.Context, auditLog *authDomain.AuditLog) error {
	line := auditLog.Line() + "\n"

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return apperrors.Wrap(os.ErrClosed, "audit log closed")
	}
	if _, err := f.file.WriteString(line); err != nil {
		return apperrors.Wrap(err, "failed to write audit log")
	}
	return nil
}

// Scan calls fn for every line of the audit log in order. A missing file is an empty log.
func (f *FileAuditLogRepository) Scan(ctx context.Context, fn func(lineNo int, line string) error) error {
	return ScanAuditLogFile(ctx, f.path, fn)
}

// Close flushes and closes the underlying file.
func (f *FileAuditLogRepository) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	syncErr := f.file.Sync()
	closeErr := f.file.Close()
	f.file = nil
	return errors.Join(syncErr, closeErr)
}

// FileAuditLogReader scans an audit log without opening it for writing.
type FileAuditLogReader struct {
	path string
}

// NewFileAuditLogReader creates a reader for the audit log at path.
func NewFileAuditLogReader(path string) *FileAuditLogReader {
	return &FileAuditLogReader{path: path}
}

// Scan calls fn for every line of the audit log in order. A missing file is an empty log.
func (r *FileAuditLogReader) Scan(ctx context.Context, fn func(lineNo int, line string) error) error {
	return ScanAuditLogFile(ctx, r.path, fn)
}

// ScanAuditLogFile calls fn for every line of the audit log at path without opening it
// for writing. A missing file is an empty log.
func ScanAuditLogFile(ctx context.Context, path string, fn func(lineNo int, line string) error) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to open audit log")
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxAuditLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.Wrap(err, "failed to read audit log")
	}
	return nil
}
