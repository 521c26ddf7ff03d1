package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
)

// auditSigningInfo is the HKDF info parameter, versioned for future algorithm changes.
const auditSigningInfo = "panvault-audit-log-signing-v1"

type auditSigner struct {
	signingKey []byte
}

// NewAuditSigner derives a 32-byte signing key from vaultKey with HKDF-SHA256 and
// returns a signer using HMAC-SHA256. The vault key itself is never used as a MAC key.
func NewAuditSigner(vaultKey []byte) (AuditSigner, error) {
	if len(vaultKey) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "audit signer requires a key")
	}

	reader := hkdf.New(sha256.New, vaultKey, nil, []byte(auditSigningInfo))
	signingKey := make([]byte, 32)
	if _, err := io.ReadFull(reader, signingKey); err != nil {
		return nil, apperrors.Wrap(err, "failed to derive signing key")
	}

	return &auditSigner{signingKey: signingKey}, nil
}

// canonicalize converts an entry to its canonical byte representation for signing.
// Format: event || detail || created_at, with length-prefixed variable fields.
func (a *auditSigner) canonicalize(log *authDomain.AuditLog) []byte {
	buf := make([]byte, 0, 64+len(log.Detail))

	buf = appendLengthPrefixed(buf, []byte(log.Event))
	buf = appendLengthPrefixed(buf, []byte(log.Detail))

	// Unix nano for precision
	buf = binary.BigEndian.AppendUint64(buf, uint64(log.CreatedAt.UnixNano()))

	return buf
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by data.
func appendLengthPrefixed(buf []byte, data []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...)
}

// Sign generates the HMAC-SHA256 signature for the entry.
func (a *auditSigner) Sign(log *authDomain.AuditLog) []byte {
	mac := hmac.New(sha256.New, a.signingKey)
	mac.Write(a.canonicalize(log))
	return mac.Sum(nil)
}

// Verify checks the entry's signature in constant time.
func (a *auditSigner) Verify(log *authDomain.AuditLog) error {
	if !hmac.Equal(log.Signature, a.Sign(log)) {
		return authDomain.ErrSignatureInvalid
	}
	return nil
}
