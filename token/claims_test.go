package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/legalsuite/go-legalsuite/token"
)

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestPeekClaims(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	raw := signedToken(t, jwtlib.MapClaims{
		"sub":   "user-1",
		"role":  "CLIENT",
		"email": "a@b.com",
		"exp":   now.Add(time.Hour).Unix(),
		"iat":   now.Unix(),
	})

	peek := token.PeekClaims(raw)
	require.True(t, peek.Active)
	require.NotNil(t, peek.Sub)
	require.Equal(t, "user-1", *peek.Sub)
	require.Equal(t, "CLIENT", peek.Role)
	require.Equal(t, "a@b.com", peek.Email)
	require.NotNil(t, peek.Exp)
	require.True(t, peek.Exp.Equal(now.Add(time.Hour)))
	require.NotNil(t, peek.Iat)
	require.True(t, peek.Iat.Equal(now))
	require.False(t, peek.Expired())
}

func TestPeekClaimsNumericUserID(t *testing.T) {
	// simplejwt access tokens carry the numeric user ID, not "sub".
	raw := signedToken(t, jwtlib.MapClaims{"user_id": float64(42)})

	peek := token.PeekClaims(raw)
	require.True(t, peek.Active)
	require.NotNil(t, peek.Sub)
	require.Equal(t, "42", *peek.Sub)
	require.Nil(t, peek.Exp)
	require.False(t, peek.Expired())
}

func TestPeekClaimsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		peek := token.PeekClaims(raw)
		require.False(t, peek.Active)
		require.False(t, peek.Expired())
	}
}

func TestExpired(t *testing.T) {
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return frozen }
	defer func() { token.NowTimeFunc = time.Now }()

	stale := signedToken(t, jwtlib.MapClaims{"exp": frozen.Add(-time.Minute).Unix()})
	fresh := signedToken(t, jwtlib.MapClaims{"exp": frozen.Add(time.Minute).Unix()})

	require.True(t, token.PeekClaims(stale).Expired())
	require.False(t, token.PeekClaims(fresh).Expired())
}
