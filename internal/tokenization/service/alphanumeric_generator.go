package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

const alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type alphanumericGenerator struct {
	length int
	reader io.Reader
}

// NewAlphanumericGenerator creates a generator of cryptographically secure random tokens
// over [A-Za-z0-9]. Length must be between MinAlphanumericLength and MaxTokenLength.
func NewAlphanumericGenerator(length int) (TokenGenerator, error) {
	if length < tokenizationDomain.MinAlphanumericLength || length > tokenizationDomain.MaxTokenLength {
		return nil, tokenizationDomain.ErrInvalidTokenLength
	}
	return &alphanumericGenerator{length: length, reader: rand.Reader}, nil
}

// Generate creates a random alphanumeric token. Each character is drawn uniformly.
func (g *alphanumericGenerator) Generate() (string, error) {
	token := make([]byte, g.length)
	charsLen := big.NewInt(int64(len(alphanumericChars)))

	for i := 0; i < g.length; i++ {
		n, err := rand.Int(g.reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		token[i] = alphanumericChars[n.Int64()]
	}

	return string(token), nil
}

// Validate checks the token length and that it contains only [A-Za-z0-9].
func (g *alphanumericGenerator) Validate(token string) error {
	if len(token) != g.length {
		return fmt.Errorf("token must be %d characters", g.length)
	}

	for _, c := range token {
		if !isAlphanumeric(c) {
			return errors.New("token must contain only alphanumeric characters [A-Za-z0-9]")
		}
	}

	return nil
}

// isAlphanumeric checks if a character is alphanumeric [A-Za-z0-9].
func isAlphanumeric(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
