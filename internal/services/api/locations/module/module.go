// Package module wires locations into the API using modkit
package module

import (
	modkit "eventdir/internal/modkit"
	"eventdir/internal/modkit/httpkit"

	locationshttp "eventdir/internal/services/api/locations/http"
	locationsrepo "eventdir/internal/services/api/locations/repo"
	locationssvc "eventdir/internal/services/api/locations/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc locationssvc.Service
}

// New constructs a locations module
// postgres is used when deps carry a TxRunner, the document source otherwise
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("locations"), modkit.WithPrefix("/locations")}, opts...)...)

	var repo locationsrepo.Repo
	if deps.UsesPG() {
		repo = locationsrepo.NewPG().Bind(deps.PG)
	} else {
		repo = locationsrepo.NewFiles(deps.Docs)
	}
	return &Module{b: b, svc: locationssvc.New(repo, nil)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { locationshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }

// Prefix returns the mount path
func (m *Module) Prefix() string { return m.b.Prefix }
