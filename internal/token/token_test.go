package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", 7*24*time.Hour)
	userID := uuid.New()

	tok, err := issuer.Issue(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.ID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	// Issue in the past, verify against the real clock.
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := issuer.Issue(uuid.New(), "member")
	require.NoError(t, err)

	issuer.now = time.Now
	claims, err := issuer.Verify(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	tok, err := issuer.Issue(uuid.New(), "member")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue(uuid.New(), "member")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
