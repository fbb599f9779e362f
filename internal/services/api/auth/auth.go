// Package auth provides the dashboard bearer token port
package auth

import (
	"crypto/subtle"

	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/platform/config"
	perr "reviewdeck/internal/platform/errors"
)

// NewPort builds the bearer auth port from config
// the dashboard uses a single shared token, requests without an Authorization
// header stay anonymous, requests with a wrong token are rejected
func NewPort(cfg config.Conf) *httpkit.Port {
	token := cfg.MayString("TOKEN", "")
	return httpkit.NewPortFunc(func(raw string) (string, error) {
		if token == "" {
			return "", perr.Unauthorizedf("dashboard auth is not configured")
		}
		if subtle.ConstantTimeCompare([]byte(raw), []byte(token)) != 1 {
			return "", perr.Unauthorizedf("invalid bearer token")
		}
		return "manager", nil
	})
}
