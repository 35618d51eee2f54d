package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts-api/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestIssueAndDecode(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	subject, err := svc.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestDecodeExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tok, err := svc.Issue(42, -time.Second)
	require.NoError(t, err)

	_, err = svc.Decode(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDecodeZeroTTL(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// An explicit zero TTL means the token is already expired on issue.
	tok, err := svc.Issue(42, 0)
	require.NoError(t, err)

	_, err = svc.Decode(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDecodeTampered(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	// Flip one character somewhere in the payload.
	tampered := []byte(tok)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.Decode(string(tampered))
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDecodeWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	other, err := NewService("other-secret", "HS256", time.Hour)
	require.NoError(t, err)

	tok, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Decode(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Decode(tok)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestDecodeRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Decode(unsigned)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestDecodeMissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Decode(noSubject)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewServiceValidation(t *testing.T) {
	t.Parallel()

	_, err := NewService("", "HS256", time.Hour)
	assert.Error(t, err)

	_, err = NewService("secret", "RS256", time.Hour)
	assert.Error(t, err)

	_, err = NewService("secret", "none", time.Hour)
	assert.Error(t, err)
}
