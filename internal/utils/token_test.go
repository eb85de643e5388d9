package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Generate(42, "ann@example.com", "partner")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, "partner", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	// Sign an already-expired token with the same secret.
	claims := Claims{
		UserID: 42,
		Email:  "ann@example.com",
		Role:   "partner",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.secret)
	require.NoError(t, err)

	_, err = issuer.Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Generate(42, "ann@example.com", "partner")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}
	_, err = issuer.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Generate(1, "x@example.com", "guest")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	_, err := issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
