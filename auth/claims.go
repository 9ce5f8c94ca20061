package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimExtractor reads one candidate identity claim.
type ClaimExtractor struct {
	Name    string
	Extract func(claims jwt.MapClaims) (string, bool)
}

// IdentityClaims is a compatibility shim: tokens minted by older versions of
// the auth service carry the user id under different claim names. Extractors
// are tried in this fixed order and the first one that resolves to an existing
// user wins. New tokens should only use "userId".
var IdentityClaims = []ClaimExtractor{
	stringClaim("userId"),
	stringClaim("user_id"),
	stringClaim("id"),
	{Name: "sub", Extract: func(claims jwt.MapClaims) (string, bool) {
		sub, err := claims.GetSubject()
		if err != nil {
			return "", false
		}
		sub = strings.TrimSpace(sub)
		return sub, sub != ""
	}},
}

func stringClaim(name string) ClaimExtractor {
	return ClaimExtractor{
		Name: name,
		Extract: func(claims jwt.MapClaims) (string, bool) {
			value, ok := claims[name].(string)
			if !ok {
				return "", false
			}
			value = strings.TrimSpace(value)
			return value, value != ""
		},
	}
}
