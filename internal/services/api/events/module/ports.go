package module

import "eventdir/internal/services/api/events/domain"

// Ports is what the events module exposes to other modules
type Ports struct {
	Events domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Events: m.svc} }
