// Package module wires properties into the API using modkit
package module

import (
	"net/http"

	modkit "reviewdeck/internal/modkit"
	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/services/properties/domain"
	propshttp "reviewdeck/internal/services/properties/http"
	propssvc "reviewdeck/internal/services/properties/service"
)

// Deps are the cross module ports the properties module consumes
type Deps struct {
	Reviews domain.ReviewsPort
}

// Module implements the properties module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc propssvc.Service
}

// New constructs the properties module
// requires a ReviewsPort injected via modkit.WithPorts(Deps{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("properties"),
		modkit.WithPrefix("/properties"),
	}, opts...)...)

	d, ok := b.Ports.(Deps)
	if !ok || d.Reviews == nil {
		panic("properties module requires a reviews port")
	}

	svc := propssvc.New(d.Reviews)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptPropertiesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		propshttp.Register(r, m.svc)
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
