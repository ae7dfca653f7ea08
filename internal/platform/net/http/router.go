package http

import "net/http"

// Handler is the plain func form every route is registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against
// the API is read only, so GET is the only verb with sugar
type Router interface {
	Get(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	// Mux is the http.Handler for this router and everything under it
	Mux() http.Handler
}
