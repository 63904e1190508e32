package routefile

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
routes:
  - method: get
    path: /users/:id
    handler: user.show
  - method: POST
    path: /users
    handler: user.create
  - method: GET
    path: /static/*
    handler: assets
`

func sampleRegistry() map[string]http.Handler {
	named := func(name string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, name)
		})
	}
	return map[string]http.Handler{
		"user.show":   named("user.show"),
		"user.create": named("user.create"),
		"assets":      named("assets"),
	}
}

func TestParse(t *testing.T) {
	t.Run("decodes entries in order", func(t *testing.T) {
		f, err := Parse([]byte(sampleTable))
		require.NoError(t, err)
		require.Len(t, f.Routes, 3)
		assert.Equal(t, Entry{Method: "GET", Path: "/users/:id", Handler: "user.show"}, f.Routes[0])
		assert.Equal(t, Entry{Method: "POST", Path: "/users", Handler: "user.create"}, f.Routes[1])
	})

	t.Run("uppercases methods", func(t *testing.T) {
		f, err := Parse([]byte("routes:\n  - {method: delete, path: /x, handler: h}\n"))
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, f.Routes[0].Method)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("routes: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "routefile:")
	})

	t.Run("rejects a missing method", func(t *testing.T) {
		_, err := Parse([]byte("routes:\n  - {path: /x, handler: h}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing method")
	})

	t.Run("rejects a missing handler", func(t *testing.T) {
		_, err := Parse([]byte("routes:\n  - {method: GET, path: /x}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing handler")
	})

	t.Run("allows an empty path as the root", func(t *testing.T) {
		f, err := Parse([]byte("routes:\n  - {method: GET, path: \"\", handler: h}\n"))
		require.NoError(t, err)
		assert.Equal(t, "", f.Routes[0].Path)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a table from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o600))

		f, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, f.Routes, 3)
	})

	t.Run("propagates read errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "routefile:")
	})
}

func TestBind(t *testing.T) {
	t.Run("resolves handlers in declaration order", func(t *testing.T) {
		f, err := Parse([]byte(sampleTable))
		require.NoError(t, err)

		routes, err := f.Bind(sampleRegistry())
		require.NoError(t, err)
		require.Len(t, routes, 3)
		assert.Equal(t, "/users/:id", routes[0].Path)
		assert.Equal(t, http.MethodPost, routes[1].Method)
		assert.NotNil(t, routes[2].Item)
	})

	t.Run("rejects unknown handler names", func(t *testing.T) {
		f, err := Parse([]byte("routes:\n  - {method: GET, path: /x, handler: nope}\n"))
		require.NoError(t, err)

		_, err = f.Bind(sampleRegistry())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown handler "nope"`)
	})
}

func TestRouter(t *testing.T) {
	t.Run("serves the declared routes", func(t *testing.T) {
		f, err := Parse([]byte(sampleTable))
		require.NoError(t, err)

		r, err := f.Router(sampleRegistry())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, "user.show", w.Body.String())

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
		assert.Equal(t, "assets", w.Body.String())

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/42", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET", w.Header().Get("Allow"))

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("later duplicates win", func(t *testing.T) {
		table := `
routes:
  - {method: GET, path: /dup, handler: user.show}
  - {method: GET, path: /dup, handler: assets}
`
		f, err := Parse([]byte(table))
		require.NoError(t, err)

		r, err := f.Router(sampleRegistry())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dup", nil))
		assert.Equal(t, "assets", w.Body.String())
	})
}
