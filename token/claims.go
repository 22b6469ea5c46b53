// Package token extracts claims from backend-issued JWTs without
// verifying them. The backend owns the signing keys; the client only
// peeks at claims to decide whether an access token is worth sending
// or is due for a refresh, and to display session details. A token
// that cannot be parsed degrades to an inactive peek rather than an
// error surfaced to the user.
package token

import (
	"strconv"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/legalsuite/go-legalsuite/internal/utils"
)

// Peek holds the claims the client cares about. Active is false when
// the raw token is empty or unparsable; Exp may be nil when the token
// carries no expiry claim.
type Peek struct {
	Active bool       // token parsed as a JWT
	Sub    *string    // subject (user ID)
	Exp    *time.Time // expiry, if present
	Iat    *time.Time // issued at, if present
	Role   string     // backend's role claim, if present
	Email  string     // email claim, if present
}

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// PeekClaims parses rawToken without signature verification and
// returns whatever claims it carries.
func PeekClaims(rawToken string) Peek {
	if strings.TrimSpace(rawToken) == "" {
		return Peek{Active: false}
	}

	unverified, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return Peek{Active: false}
	}
	claims, ok := unverified.Claims.(jwtlib.MapClaims)
	if !ok {
		return Peek{Active: false}
	}

	peek := Peek{Active: true}
	if sub, ok := claims["sub"].(string); ok {
		peek.Sub = utils.Ptr(sub)
	} else if userID, ok := claims["user_id"].(float64); ok {
		// simplejwt encodes the numeric user ID under "user_id"
		peek.Sub = utils.Ptr(strconv.FormatInt(int64(userID), 10))
	}
	if exp, ok := claims["exp"].(float64); ok {
		peek.Exp = utils.Ptr(time.Unix(int64(exp), 0))
	}
	if iat, ok := claims["iat"].(float64); ok {
		peek.Iat = utils.Ptr(time.Unix(int64(iat), 0))
	}
	peek.Role, _ = claims["role"].(string)
	peek.Email, _ = claims["email"].(string)
	return peek
}

// Expired reports whether the peeked token has an expiry in the past.
// Tokens without an expiry claim never report expired; the server
// remains the authority either way.
func (p Peek) Expired() bool {
	if !p.Active || p.Exp == nil {
		return false
	}
	return p.Exp.Before(NowTimeFunc())
}
