package httpkit

import (
	"net/http"

	perrs "reviewdeck/internal/platform/errors"
	pnet "reviewdeck/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// Anonymous reports whether the request carries no authenticated identity
func Anonymous(r *http.Request) bool {
	return pnet.UserID(r.Context()) == ""
}
