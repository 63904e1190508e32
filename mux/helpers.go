package mux

import (
	"net/http"
	"path"
)

// knownMethods is the fixed method set probed to tell a 405 apart from
// a 404. Kept in alphabetical order so the Allow header comes out
// sorted per RFC 9110 Section 7.4.1 conventions.
var knownMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// defaultNotFoundHandler replies 404 when no route matches and no
// custom handler is configured.
var defaultNotFoundHandler = http.NotFoundHandler()

// defaultMethodNotAllowedHandler replies 405 when the path matches
// under another method and no custom handler is configured. The Allow
// header is set by Router.ServeHTTP before this runs.
var defaultMethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
})

// cleanPath returns the canonical path for p, eliminating . and ..
// elements per RFC 3986 Section 5.2.4 (remove dot segments).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes the trailing slash except for the root;
	// put it back if the input had one.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}
