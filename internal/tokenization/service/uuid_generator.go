package service

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/google/uuid"
)

type uuidGenerator struct {
	reader io.Reader
}

// NewUUIDGenerator creates a new UUID token generator. Generates UUIDv4 tokens, which
// carry 122 random bits and no timestamp.
func NewUUIDGenerator() TokenGenerator {
	return &uuidGenerator{reader: rand.Reader}
}

// Generate creates a new UUIDv4 token.
func (g *uuidGenerator) Generate() (string, error) {
	id, err := uuid.NewRandomFromReader(g.reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Validate checks if the token is a canonical version 4 UUID.
func (g *uuidGenerator) Validate(token string) error {
	id, err := uuid.Parse(token)
	if err != nil || len(token) != 36 || id.Version() != 4 {
		return errors.New("invalid UUID format")
	}
	return nil
}
