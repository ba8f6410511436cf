package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := jt.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestHMACVerifier_ValidToken(t *testing.T) {
	raw := signHS256(t, "sekrit", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	tok, err := NewHMACVerifier("sekrit").Verify(context.Background(), raw)
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	require.Equal(t, "user-1", claims["sub"])
}

func TestHMACVerifier_WrongSecret(t *testing.T) {
	raw := signHS256(t, "sekrit", jwt.MapClaims{"sub": "user-1"})

	_, err := NewHMACVerifier("other").Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestHMACVerifier_ExpiredToken(t *testing.T) {
	raw := signHS256(t, "sekrit", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewHMACVerifier("sekrit").Verify(context.Background(), raw)
	require.Error(t, err)
}
