package module

import (
	"context"

	core "reviewdeck/internal/core/reviews"
	ingestdomain "reviewdeck/internal/services/ingest/domain"
	"reviewdeck/internal/services/reviews/domain"
	reviewssvc "reviewdeck/internal/services/reviews/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReviewsPort struct{ svc reviewssvc.Service }

// List returns normalized reviews filtered and sorted per the input
func (a adaptReviewsPort) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	return a.svc.List(ctx, in)
}

// All returns every stored review normalized, hidden rows included
func (a adaptReviewsPort) All(ctx context.Context) ([]core.Review, error) {
	return a.svc.All(ctx)
}

// SetVisibility persists the hidden flag and returns the updated review
func (a adaptReviewsPort) SetVisibility(ctx context.Context, in domain.VisibilityInput) (core.Review, error) {
	return a.svc.SetVisibility(ctx, in)
}

// Sync pulls from the configured upstream sources
func (a adaptReviewsPort) Sync(ctx context.Context) (ingestdomain.SyncOutput, error) {
	return a.svc.Sync(ctx)
}
