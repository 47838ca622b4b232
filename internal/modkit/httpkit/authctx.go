package httpkit

import (
	"net/http"
	"strings"

	perrs "ekilibria/internal/platform/errors"
	pnet "ekilibria/internal/platform/net"
)

// Account returns the authenticated account email from the request context
func Account(r *http.Request) (string, error) {
	acct := pnet.Account(r.Context())
	if acct == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return acct, nil
}

// Provider returns the workspace provider from the request context
func Provider(r *http.Request) (string, error) {
	prov := pnet.Provider(r.Context())
	if prov == "" {
		return "", perrs.Unauthorizedf("missing workspace provider")
	}
	return prov, nil
}

// MustAccount returns the authenticated account email or panics
func MustAccount(r *http.Request) string {
	acct, err := Account(r)
	if err != nil {
		panic(err)
	}
	return acct
}

// MustProvider returns the workspace provider or panics
func MustProvider(r *http.Request) string {
	prov, err := Provider(r)
	if err != nil {
		panic(err)
	}
	return prov
}

// BearerToken returns the raw bearer token from the Authorization header
func BearerToken(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustBearerToken returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustBearerToken(r *http.Request) string {
	raw, err := BearerToken(r)
	if err != nil {
		panic(err)
	}
	return raw
}
