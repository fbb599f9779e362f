// Package hostaway provides a resilient Hostaway reviews source
package hostaway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/platform/config"
	perr "reviewdeck/internal/platform/errors"
	"reviewdeck/internal/platform/logger"
)

const (
	authURLDefault   = "https://api.hostaway.com/v1/accessTokens"
	apiURLDefault    = "https://api.hostaway.com/v1/reviews"
	defaultTimeout   = 10 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	AuthURL      string
	APIURL       string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration

	// Retry config for transient responses
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads client options from a HOSTAWAY_ scoped config
func FromConfig(cfg config.Conf) Options {
	return Options{
		AuthURL:      cfg.MayString("AUTH_URL", authURLDefault),
		APIURL:       cfg.MayString("API_URL", apiURLDefault),
		ClientID:     cfg.MayString("CLIENT_ID", ""),
		ClientSecret: cfg.MayString("CLIENT_SECRET", ""),
		Timeout:      cfg.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries:   cfg.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:    cfg.MayDuration("RETRY_BASE", defaultRetryBase),
	}
}

// Client pulls reviews with an OAuth client-credentials token
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.AuthURL == "" {
		o.AuthURL = authURLDefault
	}
	if o.APIURL == "" {
		o.APIURL = apiURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("hostaway"),
		sleep: time.Sleep,
	}
}

// Configured reports whether client credentials are present
func (c *Client) Configured() bool {
	return c.opts.ClientID != "" && c.opts.ClientSecret != ""
}

// Name identifies the source in logs and sync results
func (c *Client) Name() string { return "hostaway" }

// Fetch pulls the current review set from Hostaway
func (c *Client) Fetch(ctx context.Context) ([]core.Raw, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, token)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "hostaway reviews payload")
	}
	return MapPayload(payload), nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.opts.ClientID},
		"client_secret": {c.opts.ClientSecret},
		"scope":         {"general"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "hostaway token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "hostaway token request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", perr.Unavailablef("hostaway token request returned %d", resp.StatusCode)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "hostaway token payload")
	}
	if tok.AccessToken == "" {
		return "", perr.Unavailablef("hostaway token response missing access_token")
	}
	return tok.AccessToken, nil
}

func (c *Client) get(ctx context.Context, token string) ([]byte, error) {
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.APIURL, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "hostaway reviews request")
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.http.Do(req)
		if err != nil {
			if attempts >= c.opts.MaxRetries {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hostaway reviews request")
			}
			back := c.opts.RetryBase << attempts
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("hostaway transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hostaway reviews body")
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode >= 500 && attempts < c.opts.MaxRetries:
			back := c.opts.RetryBase << attempts
			c.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", back).Msg("hostaway server error retrying")
			c.sleep(back)
			attempts++
		default:
			return nil, perr.Unavailablef("hostaway reviews returned %d", resp.StatusCode)
		}
	}
}
