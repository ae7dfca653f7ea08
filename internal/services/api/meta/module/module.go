// Package module wires meta endpoints into the API
package module

import (
	"eventdir/internal/core/version"
	modkit "eventdir/internal/modkit"
	"eventdir/internal/modkit/httpkit"

	metahttp "eventdir/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module; uptime counts from this call
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	return &Module{b: b, deps: metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   deps.Clock.Now(),
		Clock:       deps.Clock,
		PG:          deps.PG,
		Files:       deps.Docs,
	}}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.ModuleName() }

// Ports implements the modkit.Module interface, meta exports nothing
func (m *Module) Ports() any { return nil }
