package routefile

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treekit/treemux/mux"
	"github.com/treekit/treemux/router"
)

// File is a parsed route table.
type File struct {
	Routes []Entry `yaml:"routes"`
}

// Entry is one declared route: a method, a path pattern in package
// router syntax, and the name of the handler to dispatch to.
type Entry struct {
	Method  string `yaml:"method"`
	Path    string `yaml:"path"`
	Handler string `yaml:"handler"`
}

// Parse decodes a YAML route table. Methods are uppercased, since the
// route tree compares them by exact string. Every entry must carry a
// method and a handler name; the path may be empty or "/", which
// denotes the root.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	for i := range f.Routes {
		entry := &f.Routes[i]
		if entry.Method == "" {
			return nil, fmt.Errorf("routefile: route %d: missing method", i)
		}
		if entry.Handler == "" {
			return nil, fmt.Errorf("routefile: route %d: missing handler", i)
		}
		entry.Method = strings.ToUpper(entry.Method)
	}

	return &f, nil
}

// Load reads and parses a route table from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	return Parse(data)
}

// Bind resolves handler names against the registry and returns the
// routes in declaration order, ready for router.FromRoutes or
// mux.Router.HandleRoutes. Unknown handler names are errors.
func (f *File) Bind(registry map[string]http.Handler) ([]router.Route[http.Handler], error) {
	routes := make([]router.Route[http.Handler], 0, len(f.Routes))
	for i, entry := range f.Routes {
		handler, ok := registry[entry.Handler]
		if !ok {
			return nil, fmt.Errorf("routefile: route %d: unknown handler %q", i, entry.Handler)
		}
		routes = append(routes, router.Route[http.Handler]{
			Method: entry.Method,
			Path:   entry.Path,
			Item:   handler,
		})
	}
	return routes, nil
}

// Router binds the table and returns a ready-to-serve mux router.
func (f *File) Router(registry map[string]http.Handler) (*mux.Router, error) {
	routes, err := f.Bind(registry)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.HandleRoutes(routes)
	return r, nil
}
