// Package service contains property aggregation workflows
package service

import (
	"context"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/services/properties/domain"
)

// Service defines the properties service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the properties service on top of the reviews port
type Svc struct {
	reviews domain.ReviewsPort
}

// New constructs a properties service
func New(reviews domain.ReviewsPort) *Svc {
	if reviews == nil {
		panic("properties.Service requires a non nil ReviewsPort")
	}
	return &Svc{reviews: reviews}
}

// Metrics aggregates per-property dashboard metrics
// when hidden reviews are excluded the visible count equals the total
func (s *Svc) Metrics(ctx context.Context, in domain.MetricsInput) ([]core.PropertyMetrics, error) {
	rs, err := s.reviews.All(ctx)
	if err != nil {
		return nil, err
	}
	if !in.IncludeHidden {
		visible := make([]core.Review, 0, len(rs))
		for _, r := range rs {
			if !r.Hidden {
				visible = append(visible, r)
			}
		}
		rs = visible
	}
	return core.Aggregate(rs), nil
}

// Public returns the public review feed for one property
// published, not hidden, newest first
func (s *Svc) Public(ctx context.Context, in domain.PublicInput) ([]core.Review, error) {
	rs, err := s.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]core.Review, 0, len(rs))
	for _, r := range rs {
		if r.Hidden || r.Status != core.StatusPublished {
			continue
		}
		if r.PropertySlug != in.Slug {
			continue
		}
		feed = append(feed, r)
	}
	return core.Apply(feed, core.Filters{Sort: core.SortNewest}), nil
}
