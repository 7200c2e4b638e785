package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/course-enroll/internal/model"
)

var testIdentity = model.Identity{
	ID:    "64b0c8f2a1b2c3d4e5f60718",
	Name:  "Ada Lovelace",
	Email: "ada@example.com",
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), 7*24*time.Hour)

	signed, err := svc.Issue(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	payload, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, payload.User)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), -time.Hour)

	signed, err := svc.Issue(testIdentity)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-a"), time.Hour)
	verifier := NewService([]byte("secret-b"), time.Hour)

	signed, err := issuer.Issue(testIdentity)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestVerifyMissingIdentityClaim(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	signed, err := svc.Issue(model.Identity{})
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
