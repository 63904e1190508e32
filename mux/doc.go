// Package mux adapts the route tree in package router to net/http:
// it implements a request router and dispatcher for matching incoming
// HTTP requests against registered method and path patterns.
//
// The package implements routing semantics based on:
//   - RFC 9110 (HTTP Semantics)
//   - RFC 3986 (URIs)
//
// # Router
//
// Create a new router, register handlers, and serve:
//
//	r := mux.NewRouter()
//	r.HandleFunc(http.MethodGet, "/articles/:category/:id", ArticleHandler)
//	r.HandleFunc(http.MethodGet, "/static/*", AssetHandler)
//	http.ListenAndServe(":8080", r)
//
// Patterns follow package router: ":name" matches one segment and
// binds it, "*" matches one or more segments, anything else is
// literal. Static patterns always win over variable and wildcard
// patterns at the same position.
//
// # Path Variables
//
// Captured variables are stored in the request context and retrieved
// with Params, Vars, or VarGet:
//
//	func ArticleHandler(w http.ResponseWriter, r *http.Request) {
//	    id := mux.Vars(r)["id"]
//	    category, ok := mux.VarGet(r, "category")
//	    ...
//	}
//
// Params returns the bindings in pattern declaration order; Vars
// returns them as a map.
//
// # Mounting
//
// A router built separately can be mounted under a path prefix; its
// whole route table is merged, and variables in the prefix participate
// in the mounted routes' bindings:
//
//	api := mux.NewRouter()
//	api.HandleFunc(http.MethodGet, "/orders/:id", OrderHandler)
//	root.Mount("/api/:version", api)
//
// # Error Responses
//
// When no route matches the request path, NotFoundHandler runs (404,
// RFC 9110 Section 15.5.5); http.NotFoundHandler is the default. When
// the path is registered under a different method, the Allow header is
// set per RFC 9110 Section 15.5.6 and MethodNotAllowedHandler runs
// (405), with a bare 405 writer as the default.
//
//	r.NotFoundHandler = http.HandlerFunc(custom404)
//	r.MethodNotAllowedHandler = http.HandlerFunc(custom405)
//
// # Path Cleaning
//
// By default request paths are cleaned by removing dot segments per
// RFC 3986 Section 5.2.4 before matching, which also collapses
// repeated slashes. SkipClean disables this and hands the decoded path
// to the tree untouched, where an empty segment from a double slash
// matches no literal route:
//
//	r.SkipClean(true)
//
// # Response Helpers
//
// ResponseJSON and ResponseXML encode a value and write it with the
// appropriate Content-Type. Encoding failures produce an HTTP 500
// without writing a partial body.
//
//	mux.ResponseJSON(w, http.StatusOK, data)
package mux
