package service

import (
	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

// NewTokenGenerator creates a token generator for formatType. A length of 0 selects
// the format's default length; the length is ignored for UUID tokens.
func NewTokenGenerator(formatType tokenizationDomain.FormatType, length int) (TokenGenerator, error) {
	if err := formatType.Validate(); err != nil {
		return nil, err
	}
	if length == 0 {
		length = formatType.DefaultLength()
	}

	switch formatType {
	case tokenizationDomain.FormatAlphanumeric:
		return NewAlphanumericGenerator(length)
	case tokenizationDomain.FormatHex:
		return NewHexGenerator(length)
	case tokenizationDomain.FormatLuhn:
		return NewLuhnGenerator(length)
	default:
		return NewUUIDGenerator(), nil
	}
}
