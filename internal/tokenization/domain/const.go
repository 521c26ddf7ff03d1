// Package domain defines the tokenization vault domain: token formats, PAN and amount
// validation, purchase records and the errors the vault reports.
package domain

// FormatType defines the token format type.
type FormatType string

const (
	FormatAlphanumeric FormatType = "alphanumeric"
	FormatHex          FormatType = "hex"
	FormatUUID         FormatType = "uuid"
	FormatLuhn         FormatType = "luhn"
)

// Token and input length constraints.
const (
	// MaxTokenLength is the maximum accepted token length on any path.
	MaxTokenLength = 255

	// DefaultAlphanumericLength gives about 190 bits of entropy over [A-Za-z0-9].
	DefaultAlphanumericLength = 32

	// MinAlphanumericLength keeps alphanumeric tokens above 128 bits of entropy.
	MinAlphanumericLength = 22

	// DefaultHexLength is 16 random bytes hex encoded.
	DefaultHexLength = 32

	// MinHexLength keeps hex tokens at 128 bits of entropy.
	MinHexLength = 32

	// DefaultLuhnLength matches the longest card number.
	DefaultLuhnLength = 19

	// MinLuhnLength is the shortest format-preserving token accepted.
	MinLuhnLength = 13

	// MinPANLength and MaxPANLength bound the number of digits in a PAN.
	MinPANLength = 13
	MaxPANLength = 19

	// MaxAmountLength bounds the textual length of a charge amount.
	MaxAmountLength = 32
)

// Validate checks if the format type is valid.
func (f FormatType) Validate() error {
	switch f {
	case FormatAlphanumeric, FormatHex, FormatUUID, FormatLuhn:
		return nil
	default:
		return ErrInvalidFormatType
	}
}

// DefaultLength returns the token length used when none is configured.
// UUID tokens have a fixed length and return 0.
func (f FormatType) DefaultLength() int {
	switch f {
	case FormatAlphanumeric:
		return DefaultAlphanumericLength
	case FormatHex:
		return DefaultHexLength
	case FormatLuhn:
		return DefaultLuhnLength
	default:
		return 0
	}
}

// String returns the string representation of the format type.
func (f FormatType) String() string {
	return string(f)
}
