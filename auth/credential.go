package auth

import (
	"net/http"
	"strings"
)

const (
	tokenQueryParam = "token"
	bearerScheme    = "Bearer"
)

// CredentialFromRequest reads the handshake credential.
// The standard "Authorization: Bearer <token>" header is preferred; browser
// websocket clients cannot set headers and send it as the "token" query parameter.
func CredentialFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return StripBearer(header)
	}
	return strings.TrimSpace(r.URL.Query().Get(tokenQueryParam))
}

// StripBearer removes the auth scheme, matched case-insensitively. A value
// without a scheme is returned trimmed.
func StripBearer(credential string) string {
	credential = strings.TrimSpace(credential)
	scheme, token, found := strings.Cut(credential, " ")
	if found && strings.EqualFold(scheme, bearerScheme) {
		return strings.TrimSpace(token)
	}
	return credential
}
