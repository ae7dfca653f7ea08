package modkit

import (
	"net/http"

	"eventdir/internal/modkit/httpkit"
	str "eventdir/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount opens the module prefix on r, applies module middleware, then the
// subrouter hook, then routes, then any extra Register endpoints
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(rr httpkit.Router) {
		for _, mw := range b.Mw {
			rr.Use(mw)
		}
		rr = b.Subrouter(rr)
		if routes != nil {
			routes(rr)
		}
		b.Register(rr)
	})
}

// ModuleName is Name, panicking when a module forgot WithName
func (b Built) ModuleName() string { return str.MustString(b.Name, "module name") }
