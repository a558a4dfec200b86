// Package auth issues and verifies the signed bearer tokens used by the
// API, and hashes passwords. Tokens are stateless: validity is a pure
// function of the signature and the embedded expiry, with no server-side
// session storage.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/tattvam/config"
)

// Verification failures. Both map to 401 at the transport, but callers
// (and tests) can tell an expired token from a malformed or tampered one.
var (
	ErrTokenExpired   = errors.New("auth: token expired")
	ErrTokenMalformed = errors.New("auth: token invalid")
)

// Claims holds the typed JWT payload. The subject claim carries the
// user id; user_id duplicates it for convenience.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed HS256 token for the given user,
// expiring after ttl.
func GenerateToken(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// VerifyToken parses and validates a token string and returns the user id
// it was issued for. Malformed input never panics; it resolves to
// ErrTokenMalformed. An otherwise valid but expired token resolves to
// ErrTokenExpired.
func VerifyToken(t string) (uint, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}

	// The user id lives in the subject claim; a token without one is
	// not ours.
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrTokenMalformed
	}

	return uint(id), nil
}
