package domain

import (
	"context"

	core "reviewdeck/internal/core/reviews"
	ingestdomain "reviewdeck/internal/services/ingest/domain"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// List returns normalized reviews filtered and sorted per the input
	List(ctx context.Context, in ListInput) (ListOutput, error)

	// All returns every stored review normalized, hidden rows included
	All(ctx context.Context) ([]core.Review, error)

	// SetVisibility persists the hidden flag and returns the updated review
	SetVisibility(ctx context.Context, in VisibilityInput) (core.Review, error)

	// Sync pulls from the configured upstream sources
	Sync(ctx context.Context) (ingestdomain.SyncOutput, error)
}
