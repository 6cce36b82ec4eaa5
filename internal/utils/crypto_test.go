// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(32)
	require.NoError(t, err)

	assert.Len(t, s, 32)
	assert.Regexp(t, `^[a-zA-Z0-9]+$`, s)

	other, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestGenerateRandomStringZeroLength(t *testing.T) {
	s, err := GenerateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestGenerateListingNo(t *testing.T) {
	no, err := GenerateListingNo("rent")
	require.NoError(t, err)
	assert.Regexp(t, `^RENT-[A-Z0-9]{6}$`, no)

	no, err = GenerateListingNo("BUY")
	require.NoError(t, err)
	assert.Regexp(t, `^BUY-[A-Z0-9]{6}$`, no)
}
