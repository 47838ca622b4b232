package middleware

import (
	"net/http"

	pnet "ekilibria/internal/platform/net"
)

// AuthPort is a tiny seam the workspace token layer implements
type AuthPort interface {
	// Parse returns the account email and workspace provider from the request or an error
	Parse(r *http.Request) (account string, provider string, err error)
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			acct, prov, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithAccount(r.Context(), acct)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), prov)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
