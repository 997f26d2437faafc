package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerify(t *testing.T) {
	digest, err := Hash("Secret123!")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123!", digest)
	assert.True(t, Verify("Secret123!", digest))
	assert.False(t, Verify("wrong", digest))
	assert.False(t, Verify("", digest))
}

func TestHashUsesFixedCost(t *testing.T) {
	digest, err := Hash("Secret123!")
	require.NoError(t, err)

	got, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("Secret123!")
	require.NoError(t, err)
	b, err := Hash("Secret123!")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("Secret123!", a))
	assert.True(t, Verify("Secret123!", b))
}

func TestVerifyMalformedDigest(t *testing.T) {
	assert.False(t, Verify("Secret123!", "not-a-bcrypt-digest"))
	assert.False(t, Verify("Secret123!", ""))
}
