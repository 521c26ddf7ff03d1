package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/allisson/panvault/internal/tokenization/domain"
)

func TestNewHexGenerator(t *testing.T) {
	for _, length := range []int{0, 16, 31, 33, 256} {
		gen, err := NewHexGenerator(length)
		assert.ErrorIs(t, err, tokenizationDomain.ErrInvalidTokenLength, "length %d", length)
		assert.Nil(t, gen)
	}

	gen, err := NewHexGenerator(64)
	require.NoError(t, err)
	token, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.NoError(t, gen.Validate(token))
}

func TestHexGenerator_Validate(t *testing.T) {
	gen, err := NewHexGenerator(32)
	require.NoError(t, err)

	assert.NoError(t, gen.Validate("0123456789abcdef0123456789abcdef"))
	assert.Error(t, gen.Validate("0123456789ABCDEF0123456789ABCDEF"))
	assert.Error(t, gen.Validate("0123456789abcdef"))
	assert.Error(t, gen.Validate("0123456789abcdeg0123456789abcdef"))
}

func TestHexGenerator_EntropyFailure(t *testing.T) {
	gen := &hexGenerator{length: 32, reader: failingReader{}}

	token, err := gen.Generate()
	assert.Error(t, err)
	assert.Empty(t, token)
}
