package module

import (
	"context"

	core "reviewdeck/internal/core/reviews"
	"reviewdeck/internal/services/properties/domain"
	propssvc "reviewdeck/internal/services/properties/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptPropertiesPort struct{ svc propssvc.Service }

// Metrics aggregates per-property dashboard metrics
func (a adaptPropertiesPort) Metrics(ctx context.Context, in domain.MetricsInput) ([]core.PropertyMetrics, error) {
	return a.svc.Metrics(ctx, in)
}

// Public returns the public review feed for one property
func (a adaptPropertiesPort) Public(ctx context.Context, in domain.PublicInput) ([]core.Review, error) {
	return a.svc.Public(ctx, in)
}
