// Package routefile loads declarative route tables from YAML and turns
// them into registrations for package router and package mux.
//
// A route file is an ordered list of method, path pattern, and handler
// name:
//
//	routes:
//	  - method: GET
//	    path: /users/:id
//	    handler: user.show
//	  - method: POST
//	    path: /users
//	    handler: user.create
//	  - method: GET
//	    path: /static/*
//	    handler: assets
//
// Handler names are resolved against a registry supplied by the
// caller. Declaration order is preserved, so duplicate method and
// pattern pairs keep their last-wins registration semantics. An
// unknown handler name is an error: the route tree itself accepts
// patterns permissively, so this is the place where a deployment's
// configuration gets validated.
//
//	file, err := routefile.Load("routes.yaml")
//	if err != nil { ... }
//	r, err := file.Router(map[string]http.Handler{
//	    "user.show":   userShow,
//	    "user.create": userCreate,
//	    "assets":      assetHandler,
//	})
package routefile
