package middleware

import (
	"net/http"

	"reviewdeck/internal/platform/logger"
	pnet "reviewdeck/internal/platform/net"
)

// ScopeLogger copies the request id into the logger context so that
// logger.C(ctx) emits request_id on every line. Mount after RequestID
func ScopeLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
