// Package usecase implements the audit log recorder and verifier.
package usecase

import (
	"context"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
)

// AuditLogScanner reads stored audit lines.
type AuditLogScanner interface {
	// Scan calls fn for every stored line in order.
	Scan(ctx context.Context, fn func(lineNo int, line string) error) error
}

// AuditLogRepository defines persistence operations for audit log entries.
type AuditLogRepository interface {
	AuditLogScanner

	// Create appends one entry.
	Create(ctx context.Context, auditLog *authDomain.AuditLog) error
}

// AuditLogUseCase records signed audit events and verifies stored ones.
type AuditLogUseCase interface {
	// Record signs and queues one event. It never blocks on I/O and never fails:
	// when the queue is full or the recorder is closed the event is dropped and counted.
	Record(ctx context.Context, event authDomain.AuditEvent, detail string)

	// Dropped returns the number of events dropped so far.
	Dropped() uint64

	// Close stops accepting events and waits until the queue is drained or ctx ends.
	Close(ctx context.Context) error
}

// AuditVerifyUseCase checks every stored entry's signature.
type AuditVerifyUseCase interface {
	Verify(ctx context.Context) (*authDomain.AuditVerification, error)
}
