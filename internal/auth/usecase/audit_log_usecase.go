package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	authService "github.com/allisson/panvault/internal/auth/service"
	apperrors "github.com/allisson/panvault/internal/errors"
)

// auditLogUseCase implements AuditLogUseCase with a buffered queue drained by a single
// writer goroutine, so callers never wait on the audit file.
type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
	signer       authService.AuditSigner
	logger       *slog.Logger

	mu      sync.RWMutex
	closed  bool
	entries chan *authDomain.AuditLog
	done    chan struct{}
	dropped atomic.Uint64
}

// NewAuditLogUseCase starts the writer goroutine. bufferSize below 1 is treated as 1.
// Close must be called to stop the goroutine.
func NewAuditLogUseCase(
	auditLogRepo AuditLogRepository,
	signer authService.AuditSigner,
	bufferSize int,
	logger *slog.Logger,
) AuditLogUseCase {
	if bufferSize < 1 {
		bufferSize = 1
	}

	a := &auditLogUseCase{
		auditLogRepo: auditLogRepo,
		signer:       signer,
		logger:       logger,
		entries:      make(chan *authDomain.AuditLog, bufferSize),
		done:         make(chan struct{}),
	}
	go a.run()
	return a
}

// Record signs the entry in the caller's goroutine and queues it without blocking.
func (a *auditLogUseCase) Record(_ context.Context, event authDomain.AuditEvent, detail string) {
	auditLog := authDomain.NewAuditLog(event, detail)
	auditLog.Signature = a.signer.Sign(auditLog)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		a.drop(auditLog, "recorder closed")
		return
	}

	select {
	case a.entries <- auditLog:
	default:
		a.drop(auditLog, "queue full")
	}
}

func (a *auditLogUseCase) drop(auditLog *authDomain.AuditLog, reason string) {
	a.dropped.Add(1)
	a.logger.Warn("audit event dropped",
		slog.String("event", auditLog.Event.String()),
		slog.String("reason", reason))
}

// run writes queued entries until the queue is closed.
func (a *auditLogUseCase) run() {
	defer close(a.done)

	for auditLog := range a.entries {
		// Entries outlive the request that produced them.
		if err := a.auditLogRepo.Create(context.Background(), auditLog); err != nil {
			a.logger.Error("failed to write audit log",
				slog.String("event", auditLog.Event.String()),
				slog.Any("error", err))
		}
	}
}

// Dropped returns the number of events dropped so far.
func (a *auditLogUseCase) Dropped() uint64 {
	return a.dropped.Load()
}

// Close is safe to call more than once.
func (a *auditLogUseCase) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.entries)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return apperrors.Wrap(ctx.Err(), "audit log not drained")
	}
}

// auditVerifyUseCase implements AuditVerifyUseCase.
type auditVerifyUseCase struct {
	auditLogRepo AuditLogScanner
	signer       authService.AuditSigner
}

// NewAuditVerifyUseCase creates an AuditVerifyUseCase.
func NewAuditVerifyUseCase(
	auditLogRepo AuditLogScanner,
	signer authService.AuditSigner,
) AuditVerifyUseCase {
	return &auditVerifyUseCase{auditLogRepo: auditLogRepo, signer: signer}
}

// Verify parses and checks every line. Blank lines are skipped.
func (a *auditVerifyUseCase) Verify(ctx context.Context) (*authDomain.AuditVerification, error) {
	result := &authDomain.AuditVerification{
		InvalidLines:   make([]int, 0),
		MalformedLines: make([]int, 0),
	}

	err := a.auditLogRepo.Scan(ctx, func(lineNo int, line string) error {
		if line == "" {
			return nil
		}
		result.Total++

		auditLog, err := authDomain.ParseAuditLine(line)
		if err != nil {
			result.MalformedLines = append(result.MalformedLines, lineNo)
			return nil
		}
		if err := a.signer.Verify(auditLog); err != nil {
			result.InvalidLines = append(result.InvalidLines, lineNo)
			return nil
		}
		result.Valid++
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to verify audit log")
	}

	return result, nil
}
