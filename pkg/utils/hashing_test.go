package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("s3cret-shift")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-shift", hash)

	assert.NoError(t, ComparePasswords(hash, "s3cret-shift"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}
