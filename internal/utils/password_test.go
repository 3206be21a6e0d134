package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("admin")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifySecret("admin", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifySecret("autre", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashSecretUniqueSalt(t *testing.T) {
	h1, err := HashSecret("admin")
	require.NoError(t, err)
	h2, err := HashSecret("admin")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifySecretRejectsUnknownFormat(t *testing.T) {
	_, err := VerifySecret("admin", "$2a$10$abcdef")
	assert.Error(t, err)
}
