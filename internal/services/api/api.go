// Package api provides the HTTP API for the application
package api

import (
	"reviewdeck/internal/platform/config"
	"reviewdeck/internal/platform/logger"
	phttp "reviewdeck/internal/platform/net/http"
	"reviewdeck/internal/platform/store"

	"reviewdeck/internal/modkit"
	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/modkit/module"
	"reviewdeck/internal/modkit/swaggerkit"

	"reviewdeck/internal/adapters/source/google"
	"reviewdeck/internal/adapters/source/hostaway"
	"reviewdeck/internal/services/api/auth"
	metamod "reviewdeck/internal/services/api/meta/module"
	ingestdomain "reviewdeck/internal/services/ingest/domain"
	ingestmod "reviewdeck/internal/services/ingest/module"
	propsdomain "reviewdeck/internal/services/properties/domain"
	propsmod "reviewdeck/internal/services/properties/module"
	reviewsmod "reviewdeck/internal/services/reviews/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// construct the ingest module over whichever sources have credentials,
	// then extract its syncer for the reviews module to front over HTTP
	// with no sources the syncer stays nil and sync reports unavailable
	srcs := Sources(deps.Cfg)
	ingest := ingestmod.New(deps, srcs)
	var syncer ingestdomain.SyncerPort
	if len(srcs) > 0 {
		syncer = module.MustPortsOf[ingestmod.Ports](ingest).Syncer
	}

	reviews := reviewsmod.New(
		deps,
		modkit.WithPorts(reviewsmod.Deps{Syncer: syncer}),
	)

	properties := propsmod.New(
		deps,
		modkit.WithPorts(propsmod.Deps{
			Reviews: module.MustPortsOf[propsdomain.ReviewsPort](reviews),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		ingest, // routeless, included so its ports are registered
		reviews,
		properties,
	}

	authPort := auth.NewPort(deps.Cfg.Prefix("AUTH_"))
	stack := append(httpkit.CommonStack(), httpkit.Auth(authPort))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// Sources builds the review sources that have credentials configured
// an empty slice is valid, sync then reports unavailable
func Sources(cfg config.Conf) []ingestdomain.SourcePort {
	var out []ingestdomain.SourcePort

	if c := hostaway.NewClient(hostaway.FromConfig(cfg.Prefix("HOSTAWAY_"))); c.Configured() {
		out = append(out, c)
	}
	if c := google.NewClient(google.FromConfig(cfg.Prefix("GOOGLE_"))); c.Configured() {
		out = append(out, c)
	}
	return out
}
