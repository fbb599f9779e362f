package domain

import (
	"context"

	core "reviewdeck/internal/core/reviews"
)

// ReviewsPort is the slice of the reviews module this module consumes
type ReviewsPort interface {
	// All returns every stored review normalized, hidden rows included
	All(ctx context.Context) ([]core.Review, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Metrics aggregates per-property dashboard metrics
	Metrics(ctx context.Context, in MetricsInput) ([]core.PropertyMetrics, error)

	// Public returns the public review feed for one property
	Public(ctx context.Context, in PublicInput) ([]core.Review, error)
}
