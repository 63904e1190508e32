package mux

import (
	"context"
	"net/http"

	"github.com/treekit/treemux/router"
)

// paramsContextKey is an unexported type for the single context key.
type paramsContextKey struct{}

// ctxKey is the single context key used to store captured variables.
var ctxKey = paramsContextKey{}

// withParams stores the captured variables in the request context.
// Static matches capture nothing and skip the context allocation.
func withParams(r *http.Request, params router.Params) *http.Request {
	if len(params) == 0 {
		return r
	}
	ctx := context.WithValue(r.Context(), ctxKey, params)
	return r.WithContext(ctx)
}

// Params returns the captured path variables for the current request
// in pattern declaration order, or nil when the matched route captured
// nothing.
func Params(r *http.Request) router.Params {
	if params, ok := r.Context().Value(ctxKey).(router.Params); ok {
		return params
	}
	return nil
}

// Vars returns the captured path variables for the current request as
// a map, or nil when the matched route captured nothing.
func Vars(r *http.Request) map[string]string {
	return Params(r).Map()
}

// VarGet returns the value of a single captured variable by name and a
// boolean indicating whether the variable exists.
func VarGet(r *http.Request, name string) (string, bool) {
	params := Params(r)
	if params.Has(name) {
		return params.Get(name), true
	}
	return "", false
}

// SetParams sets the captured variables for the given request,
// returning the modified request. This is intended for testing route
// handlers without a router.
func SetParams(r *http.Request, params router.Params) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKey, params)
	return r.WithContext(ctx)
}
