package mux

import (
	"net/http"
	"strings"

	"github.com/treekit/treemux/router"
)

// Router registers handlers by HTTP method and path pattern and
// dispatches requests to them through a route tree.
//
// It implements the http.Handler interface, so it can be registered to
// serve requests:
//
//	r := mux.NewRouter()
//	r.HandleFunc(http.MethodGet, "/users/:id", handler)
//	http.ListenAndServe(":8080", r)
//
// Register and Mount calls must finish before the router starts
// serving; afterwards the route tree is read-only and safe for any
// number of concurrent requests.
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	// Corresponds to 404 Not Found per RFC 9110 Section 15.5.5.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler is called when the path is registered
	// but not under the request method. If nil, a default 405 handler
	// is used. Per RFC 9110 Section 15.5.6, the Allow header is always
	// set before this handler is invoked.
	MethodNotAllowedHandler http.Handler

	tree      *router.Tree[http.Handler]
	skipClean bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{tree: router.New[http.Handler]()}
}

// Handle registers a handler for a method and path pattern.
// Registering the same method and pattern again replaces the earlier
// handler.
func (r *Router) Handle(method, pattern string, handler http.Handler) {
	r.tree.Insert(method, pattern, handler)
}

// HandleFunc registers a handler function for a method and path
// pattern.
func (r *Router) HandleFunc(method, pattern string, f func(http.ResponseWriter, *http.Request)) {
	r.Handle(method, pattern, http.HandlerFunc(f))
}

// HandleRoutes registers an ordered route list, first to last. Later
// entries replace earlier ones for an identical method and pattern.
func (r *Router) HandleRoutes(routes []router.Route[http.Handler]) {
	for _, route := range routes {
		r.Handle(route.Method, route.Path, route.Item)
	}
}

// Mount merges another router's entire route table underneath a path
// prefix. Variables in the prefix take part in the mounted routes'
// bindings, ahead of the routes' own variables. The mounted router is
// copied, not referenced: registrations on sub after Mount returns do
// not show up in r.
func (r *Router) Mount(prefix string, sub *Router) {
	r.tree.Merge(prefix, sub.tree)
}

// SkipClean disables path cleaning for the router. When skipped, the
// decoded request path reaches the route tree verbatim; repeated
// slashes become empty segments that match no literal route.
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// ServeHTTP looks up the request method and path and dispatches to the
// registered handler, with captured path variables stored in the
// request context. Implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// (removing dot segments) unless SkipClean is enabled.
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	handler, params, ok := r.tree.Find(req.Method, req.URL.Path)
	if ok && handler != nil {
		handler.ServeHTTP(w, withParams(req, params))
		return
	}

	if !ok {
		if allowed := r.allowedMethods(req.Method, req.URL.Path); len(allowed) > 0 {
			// RFC 9110 Section 15.5.6: the origin server MUST generate
			// an Allow header field in a 405 response.
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			handler := r.MethodNotAllowedHandler
			if handler == nil {
				handler = defaultMethodNotAllowedHandler
			}
			handler.ServeHTTP(w, req)
			return
		}
	}

	handler = r.NotFoundHandler
	if handler == nil {
		handler = defaultNotFoundHandler
	}
	handler.ServeHTTP(w, req)
}

// Match reports whether any route is registered for the method and
// path, without dispatching. The handler and captured variables are
// returned on a hit.
func (r *Router) Match(method, path string) (http.Handler, router.Params, bool) {
	return r.tree.Find(method, path)
}

// allowedMethods returns the methods from the fixed probe set that
// match the request path but not the request method, sorted
// alphabetically. Used to populate the Allow header required by
// RFC 9110 Section 15.5.6 on 405 responses.
func (r *Router) allowedMethods(method, path string) []string {
	var allowed []string
	for _, candidate := range knownMethods {
		if candidate == method {
			continue
		}
		if _, _, ok := r.tree.Find(candidate, path); ok {
			allowed = append(allowed, candidate)
		}
	}
	return allowed
}
