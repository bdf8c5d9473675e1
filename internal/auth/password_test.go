package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("secret-password", 10)
	require.NoError(t, err)
	second, err := HashPassword("secret-password", 10)
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", first)
	assert.NotEqual(t, first, second, "salting must make identical passwords hash differently")
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("correct-horse", 10)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "correct-horse"))
	assert.Error(t, ComparePassword(hash, "wrong-horse"))
}

func TestComparePasswordMalformedDigest(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-digest", "anything")
	assert.Error(t, err, "a malformed digest must never verify")
}
