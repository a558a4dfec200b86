package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken(42, time.Hour)
	require.NoError(t, err)

	uid, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestTokenPayloadCarriesSubjectAndExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken(7, time.Hour)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "7", claims["sub"])
	assert.Contains(t, claims, "exp")
}

func TestVerifyRejectsTokenWithoutSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// well-signed but subject-less
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)
}

func TestExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken(7, -time.Minute)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := auth.VerifyToken(tok)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed, "token %q", tok)
	}
}

func TestWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := auth.GenerateToken(1, time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = auth.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, auth.CheckPassword(hash, "s3cret"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))

	// Salted: hashing the same password twice yields different digests.
	hash2, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}
