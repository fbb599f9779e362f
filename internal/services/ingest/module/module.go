// Package module wires the ingest worker and exposes its syncer port
package module

import (
	"net/http"

	modkit "reviewdeck/internal/modkit"
	"reviewdeck/internal/modkit/httpkit"
	"reviewdeck/internal/services/ingest/domain"
	ingestrepo "reviewdeck/internal/services/ingest/repo"
	ingestsvc "reviewdeck/internal/services/ingest/service"
)

// Ports exposes the syncer to other modules
type Ports struct {
	Syncer domain.SyncerPort
}

// Module implements the ingest module
// it mounts no routes, the reviews module fronts sync over HTTP
type Module struct {
	deps  modkit.Deps
	name  string
	mws   []func(http.Handler) http.Handler
	ports Ports

	svc ingestsvc.Service
}

// New constructs the ingest module over the given sources
func New(deps modkit.Deps, sources []domain.SourcePort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ingest")}, opts...)...)

	svc := ingestsvc.New(deps.PG, ingestrepo.NewPG(), sources)

	return &Module{
		deps:  deps,
		name:  b.Name,
		mws:   b.Mw,
		ports: Ports{Syncer: svc},
		svc:   svc,
	}
}

// MountRoutes implements the modkit.Module interface, ingest has no routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
