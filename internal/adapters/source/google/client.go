// Package google provides a Google Business Profile reviews source
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/platform/config"
	perr "reviewdeck/internal/platform/errors"
	"reviewdeck/internal/platform/logger"
)

const (
	apiBaseDefault = "https://mybusiness.googleapis.com/v4"
	defaultTimeout = 10 * time.Second
)

// Options configures the Client
type Options struct {
	APIBase   string
	AccountID string

	// AccessToken is a pre-issued Business Profile OAuth token
	// token minting from service account credentials is left to the deployment
	AccessToken string

	// LocationNames narrows batchGetReviews, empty means all
	LocationNames []string

	Timeout time.Duration
}

// FromConfig reads client options from a GOOGLE_ scoped config
func FromConfig(cfg config.Conf) Options {
	return Options{
		APIBase:       cfg.MayString("API_BASE", apiBaseDefault),
		AccountID:     cfg.MayString("ACCOUNT_ID", ""),
		AccessToken:   cfg.MayString("ACCESS_TOKEN", ""),
		LocationNames: cfg.MayCSV("LOCATION_NAMES", nil),
		Timeout:       cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Client pulls location reviews via batchGetReviews
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.APIBase == "" {
		o.APIBase = apiBaseDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("google"),
	}
}

// Configured reports whether an account and token are present
func (c *Client) Configured() bool {
	return c.opts.AccountID != "" && c.opts.AccessToken != ""
}

// Name identifies the source in logs and sync results
func (c *Client) Name() string { return "google" }

// Fetch pulls the current review set from the Business Profile API
func (c *Client) Fetch(ctx context.Context) ([]core.Raw, error) {
	url := fmt.Sprintf("%s/accounts/%s/locations:batchGetReviews", c.opts.APIBase, c.opts.AccountID)

	locs := c.opts.LocationNames
	if locs == nil {
		locs = []string{}
	}
	body, err := json.Marshal(map[string]any{"locationNames": locs})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "google request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "google reviews request")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "google reviews request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("google reviews returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "google reviews body")
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "google reviews payload")
	}
	return MapPayload(payload), nil
}
