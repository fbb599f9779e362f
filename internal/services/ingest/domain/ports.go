// Package domain holds contracts for upstream review ingestion
package domain

import (
	"context"

	core "reviewdeck/internal/core/reviews"
)

// SourcePort is one upstream review provider
type SourcePort interface {
	// Name identifies the source in logs and sync results
	Name() string

	// Fetch pulls the current review set from the source
	Fetch(ctx context.Context) ([]core.Raw, error)
}

// SourceResult reports one source's contribution to a sync run
type SourceResult struct {
	Source  string `json:"source" example:"hostaway"`
	Fetched int    `json:"fetched" example:"24"`
	Created int    `json:"created" example:"3"`
	Updated int    `json:"updated" example:"21"`
	Error   string `json:"error,omitempty" example:"hostaway: token request failed"`
}

// SyncOutput summarizes a sync run across all sources
type SyncOutput struct {
	RunID   string         `json:"run_id" example:"7f9db45b-a467-4740-8a0d-6a17a2fff197"`
	Results []SourceResult `json:"results"`
}

// SyncerPort triggers a pull from every configured source
type SyncerPort interface {
	Sync(ctx context.Context) (SyncOutput, error)
}
