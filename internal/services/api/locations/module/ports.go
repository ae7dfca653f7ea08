package module

import "eventdir/internal/services/api/locations/domain"

// Ports is what the locations module exposes to other modules
type Ports struct {
	Locations domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Locations: m.svc} }
