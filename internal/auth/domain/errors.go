package domain

import (
	"github.com/allisson/panvault/internal/errors"
)

// Authentication and audit errors.
var (
	// ErrInvalidCredentials indicates the bearer token did not match the configured hash.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrAuthTokenHashNotSet indicates the server was started without AUTH_TOKEN_HASH.
	ErrAuthTokenHashNotSet = errors.Wrap(errors.ErrInvalidInput, "auth token hash not set")

	// ErrUnknownAuditEvent indicates an audit line names an event this build does not know.
	ErrUnknownAuditEvent = errors.Wrap(errors.ErrInvalidInput, "unknown audit event")

	// ErrMalformedAuditLine indicates an audit line could not be parsed.
	ErrMalformedAuditLine = errors.Wrap(errors.ErrInvalidInput, "malformed audit line")

	// ErrSignatureInvalid indicates an audit line signature did not verify.
	ErrSignatureInvalid = errors.Wrap(errors.ErrIntegrity, "audit log signature invalid")
)
