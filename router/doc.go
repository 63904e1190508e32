// Package router implements a tree-structured route table that maps an
// HTTP method and a slash-delimited path to a stored item and the path
// variables captured along the way.
//
// The tree is generic over the stored item type, so it can hold
// http.Handler values, controller identifiers, or anything else:
//
//	t := router.New[string]()
//	t.Insert(http.MethodGet, "/users/:id", "user.show")
//	item, params, ok := t.Find(http.MethodGet, "/users/42")
//	// item == "user.show", params.Get("id") == "42"
//
// # Pattern Syntax
//
// Patterns are sequences of segments separated by "/". A leading or
// trailing slash is optional and ignored; the empty pattern and "/"
// both denote the root. Each segment is one of:
//
//   - a literal, matching only identical text
//   - a variable, written ":name", matching any single segment and
//     binding it to name
//   - a wildcard, written "*", matching one or more consecutive
//     segments
//
//	t.Insert(http.MethodGet, "path/to/item", h)    // static
//	t.Insert(http.MethodGet, "users/:group/:user", h) // variables
//	t.Insert(http.MethodGet, "files/*", h)         // wildcard
//
// Patterns are taken literally: there is no validation step, and a
// bare ":" is accepted as a variable with the empty name. Callers that
// want stricter rules must check patterns before registration.
//
// # Matching
//
// At every tree node a static child is tried first, so literal routes
// always win over variable and wildcard routes registered at the same
// position: with both "user/list" and "user/:id" registered, the path
// "user/list" resolves to the static route. Variable branches are
// tried next, and wildcard branches last. A wildcard consumes as many
// segments as possible first and gives them back one at a time until
// the rest of the pattern matches, so "path/*/tail" matches
// "path/a/tail" as well as "path/a/b/c/tail".
//
// Consecutive slashes are preserved as empty literal segments rather
// than collapsed: "//path/to/item" is not the same path as
// "path/to/item". Paths are expected to be percent-decoded by the
// caller; the tree performs no decoding or case folding of its own.
//
// Find reports a miss by returning false. A miss is the ordinary
// negative outcome, not an error.
//
// # Construction and Concurrency
//
// A tree is built once, by FromRoutes or repeated Insert calls, and
// optionally extended by merging another tree at a path prefix:
//
//	sub := router.FromRoutes([]router.Route[string]{
//		{Method: http.MethodGet, Path: "orders/:id", Item: "order.show"},
//	})
//	t.Merge("/api/:version", sub)
//
// After construction the tree is read-only. Find never mutates the
// tree, so any number of goroutines may call it concurrently without
// locking. Inserting or merging concurrently with Find is not safe.
package router
