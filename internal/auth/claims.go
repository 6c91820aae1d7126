// Package auth derives display-level identity from the locally held
// credential: unverified claims decoding, access-level resolution, and the
// screen guard built on top of both.
//
// Nothing in this package is an authorization decision. The gateway enforces
// access on every request; the derived level only shapes what the client
// renders.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload decoded from the credential's middle segment.
// The signature is never verified here; an attacker tampering with their own
// token only changes what their own client renders.
type Claims struct {
	Subject       string
	Email         string
	Name          string
	Role          string
	EmailVerified bool
	Extra         map[string]any
}

var unverifiedParser = jwt.NewParser(
	jwt.WithoutClaimsValidation(),
	jwt.WithPaddingAllowed(),
)

// ParseClaims decodes the credential into Claims without verifying the
// signature. Any malformed input (wrong segment count, undecodable base64,
// non-JSON payload) yields nil; an absent or garbled credential is a normal
// state, not an error.
func ParseClaims(credential string) *Claims {
	if credential == "" {
		return nil
	}

	raw := jwt.MapClaims{}
	if _, _, err := unverifiedParser.ParseUnverified(credential, raw); err != nil {
		return nil
	}

	c := &Claims{Extra: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "sub":
			c.Subject, _ = v.(string)
		case "email":
			c.Email, _ = v.(string)
		case "name":
			c.Name, _ = v.(string)
		case "role":
			c.Role, _ = v.(string)
		case "email_verified":
			c.EmailVerified, _ = v.(bool)
		default:
			c.Extra[k] = v
		}
	}
	return c
}
