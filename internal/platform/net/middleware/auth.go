package middleware

import (
	"net/http"

	pnet "reviewdeck/internal/platform/net"
)

// AuthPort is the seam the dashboard auth service implements
type AuthPort interface {
	// Parse returns a user id from the request or an error
	// an empty user id with a nil error means anonymous access
	Parse(r *http.Request) (userID string, err error)
}

// Auth resolves the request identity through the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), uid)))
		})
	}
}
