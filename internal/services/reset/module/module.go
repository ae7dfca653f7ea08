// Package module provides the reset module implementation
package module

import (
	"eventdir/internal/modkit"
	phttp "eventdir/internal/platform/net/http"
	"eventdir/internal/services/reset/domain"
	"eventdir/internal/services/reset/repo"
	"eventdir/internal/services/reset/service"
)

// Ports defines the reset module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the reset module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the reset module from deps.Cfg
// it needs postgres and mounts no routes
func New(deps modkit.Deps) *Module {
	if !deps.UsesPG() {
		panic("reset module requires postgres")
	}
	opts := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		StatementTimeout: opts.StatementTimeout,
		Analyze:          opts.Analyze,
	})
	return &Module{deps: deps, ports: Ports{Runner: svc}}
}

// Name returns the module name
func (m *Module) Name() string { return "reset" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op, reset runs from the command line only
func (m *Module) MountRoutes(_ phttp.Router) {}
