package domain

import (
	"github.com/allisson/panvault/internal/errors"
)

var (
	// ErrTokenNotFound indicates the token has no mapping entry.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenAlreadyExists indicates a mapping entry for the token is already stored.
	// Stores never overwrite an entry.
	ErrTokenAlreadyExists = errors.Wrap(errors.ErrConflict, "token already exists")

	// ErrTokenSpaceExhausted indicates every generated token collided with a stored one.
	ErrTokenSpaceExhausted = errors.Wrap(errors.ErrStorage, "could not allocate a unique token")

	// ErrInvalidFormatType indicates an invalid token format type was provided.
	ErrInvalidFormatType = errors.Wrap(errors.ErrInvalidInput, "invalid format type")

	// ErrInvalidTokenLength indicates the token length is invalid for the specified format.
	ErrInvalidTokenLength = errors.Wrap(errors.ErrInvalidInput, "invalid token length for format")

	// ErrInvalidPAN indicates the PAN is not a string of 13 to 19 ASCII digits.
	ErrInvalidPAN = errors.Wrap(errors.ErrInvalidInput, "pan must be 13 to 19 digits")

	// ErrEmptyToken indicates a blank token was supplied.
	ErrEmptyToken = errors.Wrap(errors.ErrInvalidInput, "token must not be empty")

	// ErrInvalidToken indicates the token contains whitespace or control characters.
	ErrInvalidToken = errors.Wrap(errors.ErrInvalidInput, "token contains invalid characters")

	// ErrTokenTooLong indicates the token exceeds MaxTokenLength.
	ErrTokenTooLong = errors.Wrap(errors.ErrInvalidInput, "token exceeds maximum length")

	// ErrInvalidAmount indicates the amount is not a positive decimal number.
	ErrInvalidAmount = errors.Wrap(errors.ErrInvalidInput, "amount must be a positive decimal number")

	// ErrUnauthorized indicates the caller did not pass the authorization gate.
	ErrUnauthorized = errors.Wrap(errors.ErrUnauthorized, "missing or invalid credentials")

	// ErrStoreUnavailable indicates the mapping store or ledger failed a read or write.
	ErrStoreUnavailable = errors.Wrap(errors.ErrStorage, "vault storage unavailable")
)
