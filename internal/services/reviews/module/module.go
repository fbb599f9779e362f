// Package module wires reviews into the API using modkit
package module

import (
	"net/http"

	modkit "reviewdeck/internal/modkit"
	"reviewdeck/internal/modkit/httpkit"
	ingestdomain "reviewdeck/internal/services/ingest/domain"
	reviewshttp "reviewdeck/internal/services/reviews/http"
	reviewsrepo "reviewdeck/internal/services/reviews/repo"
	reviewssvc "reviewdeck/internal/services/reviews/service"
)

// Deps are the cross module ports the reviews module consumes
type Deps struct {
	Syncer ingestdomain.SyncerPort
}

// Module implements the reviews module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc reviewssvc.Service
}

// New constructs the reviews module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reviews"),
		modkit.WithPrefix("/reviews"),
	}, opts...)...)

	var syncer ingestdomain.SyncerPort
	if d, ok := b.Ports.(Deps); ok {
		syncer = d.Syncer
	}

	repo := reviewsrepo.NewPG()
	svc := reviewssvc.New(deps.PG, repo, syncer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptReviewsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		reviewshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
