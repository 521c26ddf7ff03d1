package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

func TestNewLuhnGenerator(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		expectError bool
	}{
		{name: "Success_Length13", length: 13},
		{name: "Success_Length16_CreditCard", length: 16},
		{name: "Success_Length19", length: 19},
		{name: "Error_LengthTooShort", length: 12, expectError: true},
		{name: "Error_LengthZero", length: 0, expectError: true},
		{name: "Error_LengthTooLarge", length: 20, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewLuhnGenerator(tt.length)
			if tt.expectError {
				assert.ErrorIs(t, err, tokenizationDomain.ErrInvalidTokenLength)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)

			token, err := gen.Generate()
			require.NoError(t, err)
			assert.Len(t, token, tt.length)
			for _, c := range token {
				assert.True(t, c >= '0' && c <= '9', "character %c is not a digit", c)
			}
			assert.NoError(t, gen.Validate(token), "generated token should pass Luhn validation")
		})
	}
}

func TestLuhnGenerator_Validate(t *testing.T) {
	gen, err := NewLuhnGenerator(16)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectError bool
	}{
		{name: "Valid_KnownLuhnNumber_4532015112830366", token: "4532015112830366"},
		{name: "Invalid_KnownInvalidNumber", token: "4532015112830367", expectError: true},
		{name: "Invalid_WrongLength", token: "79927398713", expectError: true},
		{name: "Invalid_Empty", token: "", expectError: true},
		{name: "Invalid_ContainsLetters", token: "453201511283036a", expectError: true},
		{name: "Invalid_ContainsSpaces", token: "4532 0151 1283 03", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gen.Validate(tt.token)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateLuhnCheckDigit(t *testing.T) {
	tests := []struct {
		name          string
		digits        []int
		expectedDigit int
	}{
		{
			name:          "SimpleCase_1",
			digits:        []int{1},
			expectedDigit: 8,
		},
		{
			name:          "SimpleCase_79927398713",
			digits:        []int{7, 9, 9, 2, 7, 3, 9, 8, 7, 1},
			expectedDigit: 3,
		},
		{
			name:          "CreditCard_453201511283036",
			digits:        []int{4, 5, 3, 2, 0, 1, 5, 1, 1, 2, 8, 3, 0, 3, 6},
			expectedDigit: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDigit := calculateLuhnCheckDigit(tt.digits)
			assert.Equal(t, tt.expectedDigit, checkDigit)
		})
	}
}

func TestValidateLuhn(t *testing.T) {
	tests := []struct {
		name     string
		digits   []int
		expected bool
	}{
		{
			name:     "Valid_18",
			digits:   []int{1, 8},
			expected: true,
		},
		{
			name:     "Valid_79927398713",
			digits:   []int{7, 9, 9, 2, 7, 3, 9, 8, 7, 1, 3},
			expected: true,
		},
		{
			name:     "Valid_4532015112830366",
			digits:   []int{4, 5, 3, 2, 0, 1, 5, 1, 1, 2, 8, 3, 0, 3, 6, 6},
			expected: true,
		},
		{
			name:     "Invalid_17",
			digits:   []int{1, 7},
			expected: false,
		},
		{
			name:     "Invalid_79927398712",
			digits:   []int{7, 9, 9, 2, 7, 3, 9, 8, 7, 1, 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateLuhn(tt.digits)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLuhnGenerator_Randomness(t *testing.T) {
	gen, err := NewLuhnGenerator(19)
	require.NoError(t, err)

	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)
		assert.NoError(t, gen.Validate(token), "token %s should pass Luhn validation", token)
		tokens[token] = true
	}

	assert.Len(t, tokens, 100)
}

func TestLuhnGenerator_EntropyFailure(t *testing.T) {
	gen := &luhnGenerator{length: 16, reader: failingReader{}}

	token, err := gen.Generate()
	assert.Error(t, err)
	assert.Empty(t, token)
}
