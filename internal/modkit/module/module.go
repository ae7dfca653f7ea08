// Package module holds the module contract and port lookup used at composition time
package module

import (
	phttp "eventdir/internal/platform/net/http"
)

// Module is what cmd mains compose: routes, exported ports and a name
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
