package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"sync/atomic"

	"github.com/allisson/go-pwdhash"

	authDomain "github.com/allisson/panvault/internal/auth/domain"
	apperrors "github.com/allisson/panvault/internal/errors"
)

// credentialService implements CredentialService using Argon2id.
//
// Argon2id is deliberately slow, so the SHA-256 digest of the last token that verified
// is remembered and later requests carrying the same token skip the hash.
type credentialService struct {
	hasher    *pwdhash.PasswordHasher
	tokenHash string
	verified  atomic.Pointer[[sha256.Size]byte]
}

// NewCredentialService creates a CredentialService that authenticates against tokenHash.
// An empty tokenHash is accepted for token generation; Authenticate then always fails
// with ErrAuthTokenHashNotSet.
func NewCredentialService(tokenHash string) (CredentialService, error) {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &credentialService{
		hasher:    hasher,
		tokenHash: tokenHash,
	}, nil
}

// GenerateToken creates a 32-byte random token, URL-safe base64 encoded, and its hash.
func (s *credentialService) GenerateToken() (plainToken string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}
	plainToken = base64.RawURLEncoding.EncodeToString(randomBytes)

	tokenHash, err = s.hasher.Hash([]byte(plainToken))
	if err != nil {
		return "", "", apperrors.Wrap(err, "failed to hash token")
	}
	return plainToken, tokenHash, nil
}

// Authenticate verifies plainToken against the configured Argon2id hash.
func (s *credentialService) Authenticate(plainToken string) error {
	if s.tokenHash == "" {
		return authDomain.ErrAuthTokenHashNotSet
	}
	if plainToken == "" {
		return authDomain.ErrInvalidCredentials
	}

	digest := sha256.Sum256([]byte(plainToken))
	if cached := s.verified.Load(); cached != nil &&
		subtle.ConstantTimeCompare(cached[:], digest[:]) == 1 {
		return nil
	}

	ok, err := s.hasher.Verify([]byte(plainToken), s.tokenHash)
	if err != nil || !ok {
		return authDomain.ErrInvalidCredentials
	}

	s.verified.Store(&digest)
	return nil
}
