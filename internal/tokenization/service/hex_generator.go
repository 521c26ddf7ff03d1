package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

type hexGenerator struct {
	length int
	reader io.Reader
}

// NewHexGenerator creates a generator of lowercase hex tokens. Length counts hex
// characters and must be even and at least MinHexLength.
func NewHexGenerator(length int) (TokenGenerator, error) {
	if length < tokenizationDomain.MinHexLength || length > tokenizationDomain.MaxTokenLength || length%2 != 0 {
		return nil, tokenizationDomain.ErrInvalidTokenLength
	}
	return &hexGenerator{length: length, reader: rand.Reader}, nil
}

// Generate reads length/2 random bytes and hex encodes them.
func (g *hexGenerator) Generate() (string, error) {
	buf := make([]byte, g.length/2)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Validate checks the token length and that it is lowercase hex.
func (g *hexGenerator) Validate(token string) error {
	if len(token) != g.length {
		return fmt.Errorf("token must be %d characters", g.length)
	}
	for _, c := range token {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return errors.New("token must contain only lowercase hex characters")
		}
	}
	return nil
}
