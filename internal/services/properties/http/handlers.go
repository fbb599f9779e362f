// Package http provides http transport for properties
package http

import (
	stdhttp "net/http"

	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/services/properties/domain"
	svc "reviewdeck/internal/services/properties/service"
)

// Register mounts property endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// ranked per-property dashboard metrics
	httpkit.PostJSON[domain.MetricsInput](r, "/metrics", h.metrics)

	// public per-property review feed
	httpkit.PostJSON[domain.PublicInput](r, "/public", h.public)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /properties/metrics Properties propertiesMetrics
// @Summary Per-property review metrics ranked by volume
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body domain.MetricsInput true "Options"
// @Success 200 {array} reviews.PropertyMetrics "ok"
// @Router /properties/metrics [post]
func (h *handlers) metrics(r *stdhttp.Request, in domain.MetricsInput) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.Metrics(r.Context(), in)
}

// swagger:route POST /properties/public Properties propertiesPublic
// @Summary Public review feed for one property
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body domain.PublicInput true "Property slug"
// @Success 200 {array} reviews.Review "ok"
// @Router /properties/public [post]
func (h *handlers) public(r *stdhttp.Request, in domain.PublicInput) (any, error) {
	return h.svc.Public(r.Context(), in)
}
