// Package domain defines the merchant authentication and audit log domain models.
package domain

// AuditEvent names a significant vault event written to the audit log.
type AuditEvent string

const (
	AuditUnauthorized    AuditEvent = "UNAUTHORIZED"
	AuditTokenized       AuditEvent = "TOKENIZED"
	AuditDetokenized     AuditEvent = "DETOKENIZED"
	AuditCharged         AuditEvent = "CHARGED"
	AuditValidationError AuditEvent = "VALIDATION_ERROR"
	AuditNotFound        AuditEvent = "NOT_FOUND"
	AuditIntegrityError  AuditEvent = "INTEGRITY_ERROR"
	AuditStorageError    AuditEvent = "STORAGE_ERROR"
)

// String returns the string representation of the event.
func (e AuditEvent) String() string {
	return string(e)
}

// Validate checks if the event is one of the known audit events.
func (e AuditEvent) Validate() error {
	switch e {
	case AuditUnauthorized, AuditTokenized, AuditDetokenized, AuditCharged,
		AuditValidationError, AuditNotFound, AuditIntegrityError, AuditStorageError:
		return nil
	default:
		return ErrUnknownAuditEvent
	}
}
