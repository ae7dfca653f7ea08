package modkit

import (
	phttp "eventdir/internal/platform/net/http"
)

// Module is what every API module's New returns
type Module interface {
	// MountRoutes attaches the module under its prefix on r
	MountRoutes(r phttp.Router)
	// Ports is the module's exported surface, nil when it has none
	Ports() any
	Name() string
}
