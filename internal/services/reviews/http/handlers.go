// Package http provides http transport for reviews
package http

import (
	stdhttp "net/http"

	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/services/reviews/domain"
	svc "reviewdeck/internal/services/reviews/service"
)

// Register mounts review endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// normalized, filtered, sorted reviews
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)

	// toggle the admin-owned hidden flag
	httpkit.PatchJSON[domain.VisibilityInput](r, "/visibility", h.visibility)

	// pull from upstream sources
	httpkit.Post(r, "/sync", h.sync)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reviews/list Reviews reviewsList
// @Summary List normalized reviews with dashboard filters
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {object} domain.ListOutput "ok"
// @Router /reviews/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	// hidden rows are manager-only
	if in.IncludeHidden {
		if _, err := httpkit.User(r); err != nil {
			return nil, err
		}
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route PATCH /reviews/visibility Reviews reviewsVisibility
// @Summary Toggle public visibility of one review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.VisibilityInput true "Review id and hidden flag"
// @Success 200 {object} reviews.Review "ok"
// @Router /reviews/visibility [patch]
func (h *handlers) visibility(r *stdhttp.Request, in domain.VisibilityInput) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.SetVisibility(r.Context(), in)
}

// swagger:route POST /reviews/sync Reviews reviewsSync
// @Summary Pull reviews from the configured upstream sources
// @Tags Reviews
// @Produce json
// @Success 200 {object} domain.SyncOutput "ok"
// @Router /reviews/sync [post]
func (h *handlers) sync(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.Sync(r.Context())
}
