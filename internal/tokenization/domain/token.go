package domain

import (
	"strings"
	"unicode"
)

// ValidateToken checks the shape every token lookup requires: non-blank, at most
// MaxTokenLength bytes, and free of whitespace or control characters. It does not
// check the configured format, since stored tokens may predate a format change.
func ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	if len(token) > MaxTokenLength {
		return ErrTokenTooLong
	}
	for _, r := range token {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidToken
		}
	}
	return nil
}
