// Package module mounts independently built HTTP handlers under a
// single-segment URL prefix, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Module is a handler mounted at a prefix such as "/api".
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a module. prefix must be a single path segment with a
// leading slash; anything else panics since it is a wiring error.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, handler: handler}
}

func (m *Module) Prefix() string { return m.prefix }

// Use appends middleware. The first middleware added runs first.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches to
// the wrapped handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "" || prefix == "/":
		return fmt.Errorf("module prefix required")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix %q must begin with /", prefix)
	case strings.Contains(prefix[1:], "/"):
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
