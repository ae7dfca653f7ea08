// Package module wires events into the API using modkit
package module

import (
	modkit "eventdir/internal/modkit"
	"eventdir/internal/modkit/httpkit"

	eventshttp "eventdir/internal/services/api/events/http"
	eventsrepo "eventdir/internal/services/api/events/repo"
	eventssvc "eventdir/internal/services/api/events/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc eventssvc.Service
}

// New constructs an events module
// postgres is used when deps carry a TxRunner, the document source otherwise
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("events"), modkit.WithPrefix("/events")}, opts...)...)

	var repo eventsrepo.Repo
	if deps.UsesPG() {
		repo = eventsrepo.NewPG().Bind(deps.PG)
	} else {
		repo = eventsrepo.NewFiles(deps.Docs)
	}
	return &Module{b: b, svc: eventssvc.New(repo, deps.Clock, deps.Metrics)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { eventshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }

// Prefix returns the mount path
func (m *Module) Prefix() string { return m.b.Prefix }
